// Package entity 定义业务实体
package entity

import (
	"github.com/jimyag/jcp/pkg/apierror"
)

// SecurityGroupRule 安全组入站规则
type SecurityGroupRule struct {
	IPProtocol string   `json:"ip_protocol"`         // 协议：tcp、udp、icmp，-1 表示所有协议
	FromPort   int32    `json:"from_port"`           // 起始端口，icmp 时为类型号，-1 表示所有
	ToPort     int32    `json:"to_port"`             // 结束端口，icmp 时为代码号，-1 表示所有
	IPRanges   []string `json:"ip_ranges,omitempty"` // CIDR 列表，如 0.0.0.0/0
}

// IsValid 校验规则参数
func (r *SecurityGroupRule) IsValid() error {
	if r.IPProtocol == "" {
		return apierror.WrapError(apierror.ErrMissingParameter,
			"ip_protocol is required for security group rules", nil)
	}
	if r.FromPort < -1 || r.FromPort > 65535 || r.ToPort < -1 || r.ToPort > 65535 {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"from_port and to_port must be between -1 and 65535", nil)
	}
	if r.FromPort != -1 && r.ToPort != -1 && r.FromPort > r.ToPort {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"from_port must be less than or equal to to_port", nil)
	}
	return nil
}

// CreateSecurityGroupRequest 创建安全组请求
// 同名安全组已存在时直接复用，规则只补充缺少的部分
type CreateSecurityGroupRequest struct {
	GroupName   string              `json:"group_name" binding:"required"` // 安全组名称
	Description string              `json:"description"`                   // 描述（可选，默认使用名称）
	Rules       []SecurityGroupRule `json:"rules,omitempty"`               // 入站规则（可选）
}

// IsValid 校验请求参数
func (req *CreateSecurityGroupRequest) IsValid() error {
	if req.GroupName == "" {
		return apierror.WrapError(apierror.ErrMissingParameter, "group_name is required", nil)
	}
	for i := range req.Rules {
		if err := req.Rules[i].IsValid(); err != nil {
			return err
		}
	}
	return nil
}

// CreateSecurityGroupResponse 创建安全组响应
type CreateSecurityGroupResponse struct {
	GroupID   string              `json:"group_id"`   // 安全组 ID
	GroupName string              `json:"group_name"` // 安全组名称
	Reused    bool                `json:"reused"`     // 是否复用了云端已存在的安全组
	NewRules  []SecurityGroupRule `json:"new_rules"`  // 本次新增的入站规则，已存在的不在内
}

// AttachSecurityGroupRequest 给运行中的实例附加安全组请求
type AttachSecurityGroupRequest struct {
	InstanceID string `json:"instance_id" binding:"required"` // 实例 ID
	GroupID    string `json:"group_id"    binding:"required"` // 要附加的安全组 ID
}

// IsValid 校验请求参数
func (req *AttachSecurityGroupRequest) IsValid() error {
	if req.InstanceID == "" {
		return apierror.WrapError(apierror.ErrMissingParameter, "instance_id is required", nil)
	}
	if req.GroupID == "" {
		return apierror.WrapError(apierror.ErrMissingParameter, "group_id is required", nil)
	}
	return nil
}

// AttachSecurityGroupResponse 附加安全组响应
type AttachSecurityGroupResponse struct {
	InstanceID string   `json:"instance_id"` // 实例 ID
	GroupIDs   []string `json:"group_ids"`   // 附加之后实例上的安全组 ID 列表
}
