package ginx

import (
	"github.com/gin-gonic/gin"
)

// contextKey 用于在 gin.Context 中存储值的类型安全 key
type contextKey struct {
	name string
}

// responseFormatKey 用于存储响应格式（"json" 或 "xml"）
var responseFormatKey = contextKey{name: "response-format"}

// requestIDKey 用于存储当前请求的请求 ID
var requestIDKey = contextKey{name: "request-id"}

// setResponseFormat 设置响应格式
func setResponseFormat(ctx *gin.Context, format string) {
	ctx.Set(responseFormatKey, format)
}

// getResponseFormat 获取响应格式，如果不存在则返回默认值
func getResponseFormat(ctx *gin.Context) string {
	format, exists := ctx.Get(responseFormatKey)
	if !exists {
		return "json" // 默认使用 JSON
	}
	if str, ok := format.(string); ok {
		return str
	}
	return "json"
}

// SetRequestID 设置当前请求的请求 ID
// 由请求中间件在进入 handler 之前调用
func SetRequestID(ctx *gin.Context, requestID string) {
	ctx.Set(requestIDKey, requestID)
}

// RequestID 获取当前请求的请求 ID，不存在时返回空字符串
func RequestID(ctx *gin.Context) string {
	id, exists := ctx.Get(requestIDKey)
	if !exists {
		return ""
	}
	if str, ok := id.(string); ok {
		return str
	}
	return ""
}
