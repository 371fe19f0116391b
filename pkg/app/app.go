package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/haierkeys/note-folder-service/pkg/code"

	"github.com/gin-gonic/gin"
)

const (
	// LangKey gin.Context key of the request language
	// LangKey 请求语言在 gin.Context 中的键
	LangKey = "lang"
	// TraceIDKey gin.Context key of the request trace id
	// TraceIDKey 请求追踪 ID 在 gin.Context 中的键
	TraceIDKey = "trace_id"
	// StatusCodeKey gin.Context key of the response status, read by the access log
	// StatusCodeKey 响应状态码在 gin.Context 中的键
	StatusCodeKey = "status_code"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

// Res is the unified error structure: Code/Status/Message/Details
// Res 是统一的错误响应结构
type Res struct {
	Code      int       `json:"code"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	TraceID   string    `json:"traceId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// GetLang gets the request language set by the lang middleware
// GetLang 获取请求语言
func GetLang(c *gin.Context) string {
	return c.GetString(LangKey)
}

// GetTraceID gets the request trace id set by the trace middleware
// GetTraceID 获取请求追踪 ID
func GetTraceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

// ToJSON writes data as the response body
// ToJSON 输出 JSON 数据
func (r *Response) ToJSON(statusCode int, data interface{}) {
	r.Ctx.Set(StatusCodeKey, statusCode)
	r.Ctx.JSON(statusCode, data)
}

// ToCreated writes a 201 response with a Location header
// ToCreated 输出 201 并设置 Location
func (r *Response) ToCreated(location string, data interface{}) {
	r.Ctx.Header("Location", location)
	r.ToJSON(http.StatusCreated, data)
}

// ToNoContent writes an empty 204 response
// ToNoContent 输出 204 空响应
func (r *Response) ToNoContent() {
	r.Ctx.Set(StatusCodeKey, http.StatusNoContent)
	r.Ctx.Status(http.StatusNoContent)
}

// ToResponse outputs a code as the error structure in the request language.
// Details of server errors are never serialized.
// ToResponse 以请求语言输出错误结构，服务端错误不输出详情
func (r *Response) ToResponse(codeObj *code.Code) {
	content := Res{
		Code:      codeObj.Code(),
		Status:    codeObj.StatusCode(),
		Message:   codeObj.MsgIn(GetLang(r.Ctx)),
		TraceID:   GetTraceID(r.Ctx),
		Timestamp: time.Now(),
	}

	if codeObj.HaveDetails() && !codeObj.IsServerError() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.ToJSON(codeObj.StatusCode(), content)
}
