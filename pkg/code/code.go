package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// Business code
	// 业务码
	code int
	// HTTP status code
	// HTTP 状态码
	httpStatus int
	// Status
	// 状态
	status bool
	// Error messages
	// 错误消息
	Lang lang
	// Data
	// 数据
	data interface{}
	// Whether it contains data
	// 是否含有Data
	haveData bool
	// Error details
	// 错误详细信息
	details []string
	// Whether it contains details
	// 是否含有详情
	haveDetails bool
	// Underlying error, never serialized
	// 原始错误，不输出
	cause error
}

var codes = map[int]string{}

func NewError(code int, httpStatus int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already exists, please replace one", code))
	}
	codes[code] = l.GetMessage()

	return &Code{code: code, httpStatus: httpStatus, status: false, Lang: l}
}

var sussCodes = map[int]string{}

func NewSuss(code int, httpStatus int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already exists, please replace one", code))
	}
	sussCodes[code] = l.GetMessage()

	return &Code{code: code, httpStatus: httpStatus, status: true, Lang: l}
}

// Clone creates a new Code copy without data, details or cause
// Clone 创建一个新的 Code 副本（不包含数据、详情与原始错误）
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		httpStatus: e.httpStatus,
		status:     e.status,
		Lang:       e.Lang,
	}
}

func (e *Code) copy() *Code {
	c := *e
	c.details = append([]string(nil), e.details...)
	return &c
}

func (e *Code) Error() string {
	if e.cause != nil {
		return e.Msg() + ": " + e.cause.Error()
	}
	return e.Msg()
}

// Is reports whether target is a Code with the same business code,
// so errors.Is keeps working on clones created by the With* methods.
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return t.code == e.code
}

// Unwrap returns the underlying error
// Unwrap 返回原始错误
func (e *Code) Unwrap() error {
	return e.cause
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

// MsgIn returns the message in the given language
// MsgIn 返回指定语言的消息
func (e *Code) MsgIn(language string) string {
	return e.Lang.GetMessageIn(language)
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Cause() error {
	return e.cause
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.copy()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.copy()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// WithCause attaches the underlying error for logging
// WithCause 附加原始错误（仅用于日志）
func (e *Code) WithCause(err error) *Code {
	c := e.copy()
	c.cause = err
	return c
}

// StatusCode returns the HTTP status, server errors default to 500
// StatusCode 返回 HTTP 状态码
func (e *Code) StatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusOK
	}
	return e.httpStatus
}

// IsServerError reports whether the code maps to a 5xx response
// IsServerError 是否为服务端错误
func (e *Code) IsServerError() bool {
	return e.StatusCode() >= http.StatusInternalServerError
}
