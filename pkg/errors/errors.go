package errors

import (
	"errors"

	pkgapp "github.com/haierkeys/note-folder-service/pkg/app"
	"github.com/haierkeys/note-folder-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应处理
// Known codes answer with their own HTTP status and message. Anything else
// becomes a sanitized 500. The original error is attached to the gin context
// as a private error so the access log records it.
func ErrorResponse(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		pkgapp.NewResponse(c).ToResponse(codeErr)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.ErrorServerInternal)
}

// IsCode 检查错误链中是否包含指定 Code
func IsCode(err error, target *code.Code) bool {
	return errors.Is(err, target)
}

// GetCode 从错误链中获取 Code
func GetCode(err error) *code.Code {
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		return codeErr
	}
	return nil
}
