// Package entity 定义业务实体
package entity

// HealthResponse 健康检查响应，不依赖云端状态
type HealthResponse struct {
	Status string `json:"status"` // 固定为 ok
}
