package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2lib "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/pkg/apierror"
	"github.com/jimyag/jcp/pkg/ec2"
	"github.com/rs/zerolog"
)

// 云端对每个实例最多允许挂 5 个安全组
const maxSecurityGroupsPerInstance = 5

// SecurityGroupService 安全组服务
type SecurityGroupService struct {
	client ec2.EC2Client
}

// NewSecurityGroupService 创建安全组服务
func NewSecurityGroupService(
	client ec2.EC2Client,
) *SecurityGroupService {
	return &SecurityGroupService{
		client: client,
	}
}

// CreateSecurityGroup 创建安全组并补齐入站规则
// 同名安全组已存在时直接复用，规则只补充缺少的部分
func (s *SecurityGroupService) CreateSecurityGroup(ctx context.Context, req *entity.CreateSecurityGroupRequest) (*entity.CreateSecurityGroupResponse, error) {
	description := req.Description
	if description == "" {
		description = req.GroupName
	}

	groupID, reused, err := s.EnsureSecurityGroup(ctx, req.GroupName, description)
	if err != nil {
		return nil, err
	}

	newRules, err := s.AuthorizeIngress(ctx, groupID, req.Rules)
	if err != nil {
		return nil, err
	}

	return &entity.CreateSecurityGroupResponse{
		GroupID:   groupID,
		GroupName: req.GroupName,
		Reused:    reused,
		NewRules:  newRules,
	}, nil
}

// EnsureSecurityGroup 确保安全组存在，返回安全组 ID 和是否复用
// 按名称查询，已存在时返回已有安全组的 ID
func (s *SecurityGroupService) EnsureSecurityGroup(ctx context.Context, groupName, description string) (string, bool, error) {
	logger := zerolog.Ctx(ctx)

	// 查询已有的安全组
	output, err := s.client.DescribeSecurityGroups(ctx, &ec2lib.DescribeSecurityGroupsInput{})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to describe security groups")
		return "", false, providerError(err)
	}

	for _, group := range output.SecurityGroups {
		if aws.ToString(group.GroupName) == groupName {
			groupID := aws.ToString(group.GroupId)
			logger.Info().
				Str("group_name", groupName).
				Str("group_id", groupID).
				Msg("Security group already exists, reusing it")
			return groupID, true, nil
		}
	}

	// 不存在则创建
	created, err := s.client.CreateSecurityGroup(ctx, &ec2lib.CreateSecurityGroupInput{
		GroupName:   aws.String(groupName),
		Description: aws.String(description),
	})
	if err != nil {
		logger.Error().Err(err).Str("group_name", groupName).Msg("Failed to create security group")
		return "", false, providerError(err)
	}

	groupID := aws.ToString(created.GroupId)
	logger.Info().
		Str("group_name", groupName).
		Str("group_id", groupID).
		Msg("Security group created successfully")
	return groupID, false, nil
}

// AuthorizeIngress 给安全组补齐入站规则，返回本次新增的规则
// 已存在的规则会被跳过，全部已存在时不发起授权调用
func (s *SecurityGroupService) AuthorizeIngress(ctx context.Context, groupID string, rules []entity.SecurityGroupRule) ([]entity.SecurityGroupRule, error) {
	logger := zerolog.Ctx(ctx)

	if len(rules) == 0 {
		return nil, nil
	}

	// 查询安全组已有的入站规则
	output, err := s.client.DescribeSecurityGroups(ctx, &ec2lib.DescribeSecurityGroupsInput{
		GroupIds: []string{groupID},
	})
	if err != nil {
		logger.Error().Err(err).Str("group_id", groupID).Msg("Failed to describe security group")
		return nil, providerError(err)
	}
	if len(output.SecurityGroups) == 0 {
		logger.Error().Str("group_id", groupID).Msg("Security group not found")
		return nil, apierror.WrapError(apierror.ErrInvalidGroupNotFound,
			fmt.Sprintf("The security group '%s' does not exist", groupID), nil)
	}
	existing := output.SecurityGroups[0].IpPermissions

	// 挑出还不存在的规则
	missing := make([]ec2types.IpPermission, 0, len(rules))
	newRules := make([]entity.SecurityGroupRule, 0, len(rules))
	for i, permission := range rulesToIPPermissions(rules) {
		if ipPermissionExists(permission, existing) {
			continue
		}
		missing = append(missing, permission)
		newRules = append(newRules, rules[i])
	}

	if len(missing) == 0 {
		logger.Info().Str("group_id", groupID).Msg("Security group already has all desired ingress rules")
		return nil, nil
	}

	if _, err := s.client.AuthorizeSecurityGroupIngress(ctx, &ec2lib.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: missing,
	}); err != nil {
		logger.Error().Err(err).Str("group_id", groupID).Msg("Failed to authorize ingress rules")
		return nil, providerError(err)
	}

	logger.Info().
		Str("group_id", groupID).
		Int("count", len(missing)).
		Msg("Ingress rules authorized successfully")
	return newRules, nil
}

// AttachSecurityGroup 给运行中的实例附加安全组
// 安全组已经挂在实例上时不做任何修改
func (s *SecurityGroupService) AttachSecurityGroup(ctx context.Context, req *entity.AttachSecurityGroupRequest) (*entity.AttachSecurityGroupResponse, error) {
	logger := zerolog.Ctx(ctx)

	// 查询实例当前挂的安全组
	output, err := s.client.DescribeInstances(ctx, &ec2lib.DescribeInstancesInput{
		InstanceIds: []string{req.InstanceID},
	})
	if err != nil {
		logger.Error().Err(err).Str("instance_id", req.InstanceID).Msg("Failed to describe instance")
		return nil, providerError(err)
	}
	if len(output.Reservations) == 0 || len(output.Reservations[0].Instances) == 0 {
		logger.Error().Str("instance_id", req.InstanceID).Msg("Instance not found")
		return nil, apierror.WrapError(apierror.ErrInvalidInstanceIDNotFound,
			fmt.Sprintf("The instance ID '%s' does not exist", req.InstanceID), nil)
	}

	instance := output.Reservations[0].Instances[0]
	groupIDs := make([]string, 0, len(instance.SecurityGroups)+1)
	attached := false
	for _, group := range instance.SecurityGroups {
		id := aws.ToString(group.GroupId)
		groupIDs = append(groupIDs, id)
		if id == req.GroupID {
			attached = true
		}
	}

	if attached {
		logger.Info().
			Str("instance_id", req.InstanceID).
			Str("group_id", req.GroupID).
			Msg("Security group already attached to the instance")
		return &entity.AttachSecurityGroupResponse{
			InstanceID: req.InstanceID,
			GroupIDs:   groupIDs,
		}, nil
	}

	if len(groupIDs) >= maxSecurityGroupsPerInstance {
		logger.Error().
			Str("instance_id", req.InstanceID).
			Int("count", len(groupIDs)).
			Msg("Security group limit per instance exceeded")
		return nil, apierror.WrapError(apierror.ErrSecurityGroupsPerInstanceLimitExceeded,
			fmt.Sprintf("You have reached the limit of %d security groups per instance", maxSecurityGroupsPerInstance), nil)
	}
	groupIDs = append(groupIDs, req.GroupID)

	if _, err := s.client.ModifyInstanceAttribute(ctx, &ec2lib.ModifyInstanceAttributeInput{
		InstanceId: aws.String(req.InstanceID),
		Groups:     groupIDs,
	}); err != nil {
		logger.Error().Err(err).
			Str("instance_id", req.InstanceID).
			Str("group_id", req.GroupID).
			Msg("Failed to attach security group")
		return nil, providerError(err)
	}

	logger.Info().
		Str("instance_id", req.InstanceID).
		Str("group_id", req.GroupID).
		Msg("Security group attached successfully")
	return &entity.AttachSecurityGroupResponse{
		InstanceID: req.InstanceID,
		GroupIDs:   groupIDs,
	}, nil
}
