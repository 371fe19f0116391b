package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/haierkeys/note-folder-service/pkg/app"
	"github.com/haierkeys/note-folder-service/pkg/code"
	"github.com/haierkeys/note-folder-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
// The panic value is logged with the stack; the client only sees a generic 500.
func RecoveryWithLogger(lg *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if r := recover(); r != nil {
				fields := []zap.Field{
					zap.String("router", path),
					zap.String(logger.FieldMethod, c.Request.Method),
					zap.String("query", query),
					zap.String("ip", c.ClientIP()),
					zap.String("user-agent", c.Request.UserAgent()),
					zap.String(logger.FieldTraceID, app.GetTraceID(c)),
					zap.String("stack", string(debug.Stack())),
				}

				var err error
				switch v := r.(type) {
				case error:
					err = v
					lg.Error("Recovered from panic", append(fields, zap.Error(v))...)
				default:
					err = fmt.Errorf("panic: %v", v)
					// 如果是其它类型的 panic（如非错误类型的 panic）
					lg.Error("Recovered from unknown panic", append(fields, zap.String("panic_value", fmt.Sprintf("%v", v)))...)
				}

				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
				app.NewResponse(c).ToResponse(code.ErrorServerInternal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
