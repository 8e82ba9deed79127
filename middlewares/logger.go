package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
)

// AccessLog writes one zap line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.S().Errorw("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.S().Warnw("request", fields...)
		default:
			logger.S().Infow("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs the value.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		logger.S().Errorw("panic recovered", "path", c.Request.URL.Path, "panic", rec)
		resp.Fail(c, http.StatusInternalServerError, "internal server error")
		c.Abort()
	})
}
