// Package entity 定义业务实体
package entity

import (
	"github.com/jimyag/jcp/pkg/apierror"
)

// RunInstancesRequest 创建实例请求
// 所有字段均可选：镜像和实例类型缺省时使用配置中的默认值，数量缺省为 1
type RunInstancesRequest struct {
	ImageID      string `json:"image_id"`      // 镜像 ID（可选，默认使用配置的 default_image_id）
	InstanceType string `json:"instance_type"` // 实例类型（可选，默认使用配置的 default_instance_type）
	Count        int32  `json:"count"`         // 创建数量（可选，等价于 min_count = max_count = count）
	MinCount     int32  `json:"min_count"`     // 最小创建数量（可选，与 count 互斥）
	MaxCount     int32  `json:"max_count"`     // 最大创建数量（可选，与 count 互斥）

	KeyName       string `json:"key_name,omitempty"`        // 密钥对名称（可选，直接传给云端）
	CreateKeyPair bool   `json:"create_key_pair,omitempty"` // 密钥对不存在时是否先创建并保存私钥

	SecurityGroupIDs         []string            `json:"security_group_ids,omitempty"`         // 安全组 ID 列表（可选，直接传给云端）
	CreateSecurityGroup      bool                `json:"create_security_group,omitempty"`      // 是否按名称创建（或复用）安全组
	SecurityGroupName        string              `json:"security_group_name,omitempty"`        // 安全组名称（create_security_group 时必填）
	SecurityGroupDescription string              `json:"security_group_description,omitempty"` // 安全组描述（可选，默认使用名称）
	SecurityGroupRules       []SecurityGroupRule `json:"security_group_rules,omitempty"`       // 入站规则（可选，已存在的规则会被跳过）

	UserData *UserData `json:"user_data,omitempty"` // 实例启动配置（可选，渲染为 cloud-config）
}

// IsValid 校验请求参数，校验失败时不会发起任何云端调用
func (req *RunInstancesRequest) IsValid() error {
	if req.Count < 0 || req.MinCount < 0 || req.MaxCount < 0 {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"count, min_count and max_count must not be negative", nil)
	}
	if req.Count > 0 && (req.MinCount > 0 || req.MaxCount > 0) {
		return apierror.WrapError(apierror.ErrInvalidParameterCombination,
			"count may not be combined with min_count or max_count", nil)
	}
	if req.MaxCount > 0 && req.MinCount > req.MaxCount {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"max_count must be greater than or equal to min_count", nil)
	}
	if req.CreateKeyPair && req.KeyName == "" {
		return apierror.WrapError(apierror.ErrMissingParameter,
			"key_name is required when create_key_pair is set", nil)
	}
	if req.CreateSecurityGroup && req.SecurityGroupName == "" {
		return apierror.WrapError(apierror.ErrMissingParameter,
			"security_group_name is required when create_security_group is set", nil)
	}
	for i := range req.SecurityGroupRules {
		if err := req.SecurityGroupRules[i].IsValid(); err != nil {
			return err
		}
	}
	if req.UserData != nil {
		if err := req.UserData.IsValid(); err != nil {
			return err
		}
	}
	return nil
}

// RunInstancesResponse 创建实例响应
type RunInstancesResponse struct {
	InstanceIDs []string `json:"instance_ids"` // 云端分配的实例 ID 列表
}

// TerminateInstanceRequest 终止单个实例请求，实例 ID 来自 URI
type TerminateInstanceRequest struct {
	InstanceID string `json:"instance_id" uri:"instance_id" binding:"required"` // 实例 ID
}

// IsValid 校验请求参数
func (req *TerminateInstanceRequest) IsValid() error {
	if req.InstanceID == "" {
		return apierror.WrapError(apierror.ErrMissingParameter, "instance_id is required", nil)
	}
	return nil
}

// TerminateInstancesRequest 批量终止实例请求
type TerminateInstancesRequest struct {
	InstanceIDs []string `json:"instance_ids" binding:"required"` // 实例 ID 列表
}

// IsValid 校验请求参数
func (req *TerminateInstancesRequest) IsValid() error {
	if len(req.InstanceIDs) == 0 {
		return apierror.WrapError(apierror.ErrMissingParameter, "instance_ids must not be empty", nil)
	}
	for _, id := range req.InstanceIDs {
		if id == "" {
			return apierror.WrapError(apierror.ErrInvalidParameterValue,
				"instance_ids must not contain empty values", nil)
		}
	}
	return nil
}

// TerminateInstancesResponse 批量终止实例响应
type TerminateInstancesResponse struct {
	TerminatingInstances []InstanceStateChange `json:"terminating_instances"`
}

// InstanceStateChange 实例状态变更信息，状态名称原样来自云端
type InstanceStateChange struct {
	InstanceID    string `json:"instance_id"`    // 实例 ID
	PreviousState string `json:"previous_state"` // 之前的状态，如 running
	CurrentState  string `json:"current_state"`  // 当前状态，如 shutting-down
}
