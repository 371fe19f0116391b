package dto

import "time"

// FolderDTO 文件夹数据传输对象
type FolderDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FolderGetRequest 获取单个文件夹参数
type FolderGetRequest struct {
	ID string `uri:"id" json:"id"`
}

// FolderCreateRequest 创建文件夹参数
type FolderCreateRequest struct {
	Name string `json:"name" form:"name" binding:"max=255"`
}

// FolderUpdateRequest 重命名文件夹参数
type FolderUpdateRequest struct {
	ID   string `uri:"id" json:"-"`
	Name string `json:"name" form:"name" binding:"max=255"`
}

// FolderDeleteRequest 删除文件夹参数
type FolderDeleteRequest struct {
	ID string `uri:"id" json:"id"`
}
