package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/internal/jcp/metrics"
	"github.com/jimyag/jcp/pkg/ginx"
	"github.com/jimyag/jcp/pkg/idgen"
	"github.com/rs/zerolog"
)

// RequestID 为每个请求生成请求 ID
// 请求 ID 会写入响应头、错误响应和 logger 的 request_id 字段
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID, err := idgen.GenerateRequestID()
		if err == nil {
			ginx.SetRequestID(ctx, requestID)
			ctx.Header("X-Request-Id", requestID)

			logger := zerolog.Ctx(ctx).With().Str("request_id", requestID).Logger()
			ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context()))
		}
		ctx.Next()
	}
}

// Metrics 记录每个请求的计数和耗时
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		operation := ctx.FullPath()
		if operation == "" {
			operation = "unmatched"
		}
		metrics.RequestCount.WithLabelValues(operation, strconv.Itoa(ctx.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
