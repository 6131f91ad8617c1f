package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/pkg/logger"
)

// RequestLogger logs every request with its status and latency
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Info().
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", ctx.ClientIP()).
			Msg("Request handled")
	}
}
