package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/pkg/ginx"
)

// Health 健康检查，不依赖云端可用
type Health struct{}

func NewHealth() *Health {
	return &Health{}
}

func (h *Health) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ginx.Adapt2(h.Health))
}

func (h *Health) Health(_ *gin.Context) *entity.HealthResponse {
	return &entity.HealthResponse{Status: "ok"}
}
