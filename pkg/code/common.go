package code

import "net/http"

var (
	Success = NewSuss(0, http.StatusOK, lang{en: "Success", zh_cn: "成功"})
	Created = NewSuss(1, http.StatusCreated, lang{en: "Created", zh_cn: "创建成功"})

	Failed                    = NewError(100, http.StatusInternalServerError, lang{en: "Failed", zh_cn: "失败"})
	ErrorServerInternal       = NewError(101, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "服务器内部错误"})
	ErrorDBQuery              = NewError(102, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "服务器内部错误"})
	ErrorNotFound             = NewError(103, http.StatusNotFound, lang{en: "Not Found", zh_cn: "未找到"})
	ErrorInvalidParams        = NewError(104, http.StatusBadRequest, lang{en: "Invalid parameters", zh_cn: "参数错误"})
	ErrorTooManyRequests      = NewError(105, http.StatusTooManyRequests, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorNotUserAuthToken     = NewError(106, http.StatusUnauthorized, lang{en: "Unauthorized", zh_cn: "未提供授权 Token"})
	ErrorInvalidUserAuthToken = NewError(107, http.StatusUnauthorized, lang{en: "Invalid authorization token", zh_cn: "授权 Token 无效"})
	ErrorInvalidID            = NewError(108, http.StatusBadRequest, lang{en: "The `id` is not valid", zh_cn: "`id` 格式不正确"})
)

// Folder
// 文件夹
var (
	ErrorFolderNameRequired = NewError(200, http.StatusBadRequest, lang{en: "Missing `name` in request body", zh_cn: "请求体缺少 `name`"})
	ErrorFolderNameExist    = NewError(201, http.StatusBadRequest, lang{en: "The folder name already exists", zh_cn: "文件夹名称已存在"})
	ErrorFolderNotFound     = NewError(202, http.StatusNotFound, lang{en: "The `id` does not exist.", zh_cn: "`id` 不存在"})
	ErrorFolderNotOwned     = NewError(203, http.StatusBadRequest, lang{en: "This id does not belong to this user.", zh_cn: "该 id 不属于当前用户"})
)

// Note
// 笔记
var (
	ErrorNoteTitleRequired   = NewError(300, http.StatusBadRequest, lang{en: "Missing `title` in request body", zh_cn: "请求体缺少 `title`"})
	ErrorNoteFolderIDInvalid = NewError(301, http.StatusBadRequest, lang{en: "The `folderId` is not valid", zh_cn: "`folderId` 格式不正确"})
	ErrorNoteFolderInvalid   = NewError(302, http.StatusBadRequest, lang{en: "The `folderId` does not belong to this user", zh_cn: "`folderId` 不属于当前用户"})
)
