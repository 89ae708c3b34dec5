// Package service 提供业务逻辑层的服务实现
// 包括 Instance Service、KeyPair Service 和 SecurityGroup Service
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
	"github.com/jimyag/jcp/pkg/userdata"
	"github.com/rs/zerolog"
)

// InstanceService 实例服务，管理 EC2 实例的创建和终止
// 本身不保存任何实例状态，云端是唯一的数据来源
type InstanceService struct {
	client               ec2.EC2Client
	keyPairService       *KeyPairService
	securityGroupService *SecurityGroupService
	defaultImageID       string
	defaultInstanceType  string
	enableSecurityGroups bool
}

// NewInstanceService 创建新的 Instance Service
func NewInstanceService(
	client ec2.EC2Client,
	keyPairService *KeyPairService,
	securityGroupService *SecurityGroupService,
	defaultImageID string,
	defaultInstanceType string,
	enableSecurityGroups bool,
) *InstanceService {
	return &InstanceService{
		client:               client,
		keyPairService:       keyPairService,
		securityGroupService: securityGroupService,
		defaultImageID:       defaultImageID,
		defaultInstanceType:  defaultInstanceType,
		enableSecurityGroups: enableSecurityGroups,
	}
}

// RunInstances 创建实例
// 可选的密钥对、安全组准备完成后，只发起一次 RunInstances 调用，
// 不重试、不等待实例就绪，重复调用会创建新的实例
func (s *InstanceService) RunInstances(ctx context.Context, req *entity.RunInstancesRequest) (*entity.RunInstancesResponse, error) {
	logger := zerolog.Ctx(ctx)

	// 设置默认值
	imageID := req.ImageID
	if imageID == "" {
		imageID = s.defaultImageID
	}
	instanceType := req.InstanceType
	if instanceType == "" {
		instanceType = s.defaultInstanceType
	}
	minCount, maxCount := resolveCounts(req)

	logger.Info().
		Str("image_id", imageID).
		Str("instance_type", instanceType).
		Int32("min_count", minCount).
		Int32("max_count", maxCount).
		Msg("Creating instances")

	params := &ec2lib.RunInstancesInput{
		ImageId:      aws.String(imageID),
		InstanceType: ec2types.InstanceType(instanceType),
		MinCount:     aws.Int32(minCount),
		MaxCount:     aws.Int32(maxCount),
	}

	// 安全组准备块：按名称创建或复用安全组，并补齐入站规则
	securityGroupIDs := req.SecurityGroupIDs
	if s.enableSecurityGroups && req.CreateSecurityGroup {
		description := req.SecurityGroupDescription
		if description == "" {
			description = req.SecurityGroupName
		}
		groupID, _, err := s.securityGroupService.EnsureSecurityGroup(ctx, req.SecurityGroupName, description)
		if err != nil {
			return nil, err
		}
		if _, err := s.securityGroupService.AuthorizeIngress(ctx, groupID, req.SecurityGroupRules); err != nil {
			return nil, err
		}
		securityGroupIDs = append(securityGroupIDs, groupID)
	}
	if len(securityGroupIDs) > 0 {
		params.SecurityGroupIds = securityGroupIDs
	}

	// 密钥对准备块：密钥对不存在时创建并保存私钥
	if req.KeyName != "" {
		if req.CreateKeyPair {
			if _, err := s.keyPairService.EnsureKeyPair(ctx, req.KeyName); err != nil {
				return nil, err
			}
		}
		params.KeyName = aws.String(req.KeyName)
	}

	// user data 准备块：渲染 cloud-config 并按云端要求 base64 编码
	if req.UserData != nil {
		content, err := renderUserData(req.UserData)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to render user data")
			return nil, err
		}
		params.UserData = aws.String(userdata.Encode(content))
	}

	output, err := s.client.RunInstances(ctx, params)
	if err != nil {
		logger.Error().Err(err).Str("image_id", imageID).Msg("Failed to run instances")
		return nil, providerError(err)
	}

	instanceIDs := make([]string, 0, len(output.Instances))
	for _, instance := range output.Instances {
		instanceIDs = append(instanceIDs, aws.ToString(instance.InstanceId))
	}
	if len(instanceIDs) == 0 {
		logger.Error().Msg("Provider returned no instances")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Provider returned no instances", nil)
	}

	logger.Info().Strs("instance_ids", instanceIDs).Msg("Instances created successfully")
	return &entity.RunInstancesResponse{InstanceIDs: instanceIDs}, nil
}

// TerminateInstance 终止单个实例，返回云端报告的状态变更
func (s *InstanceService) TerminateInstance(ctx context.Context, instanceID string) (*entity.InstanceStateChange, error) {
	resp, err := s.TerminateInstances(ctx, &entity.TerminateInstancesRequest{
		InstanceIDs: []string{instanceID},
	})
	if err != nil {
		return nil, err
	}

	// 云端为每个实例返回一条状态变更，空响应视为实例不存在
	if len(resp.TerminatingInstances) == 0 {
		return nil, apierror.WrapError(apierror.ErrInvalidInstanceIDNotFound,
			fmt.Sprintf("The instance ID '%s' does not exist", instanceID), nil)
	}
	return &resp.TerminatingInstances[0], nil
}

// TerminateInstances 批量终止实例
// 只发起一次 TerminateInstances 调用，不等待终止完成，
// 终止已终止的实例由云端决定结果，这里原样返回
func (s *InstanceService) TerminateInstances(ctx context.Context, req *entity.TerminateInstancesRequest) (*entity.TerminateInstancesResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Strs("instance_ids", req.InstanceIDs).Msg("Terminating instances")

	output, err := s.client.TerminateInstances(ctx, &ec2lib.TerminateInstancesInput{
		InstanceIds: req.InstanceIDs,
	})
	if err != nil {
		logger.Error().Err(err).Strs("instance_ids", req.InstanceIDs).Msg("Failed to terminate instances")
		return nil, providerError(err)
	}

	changes := stateChangesToEntity(output.TerminatingInstances)
	logger.Info().Strs("instance_ids", req.InstanceIDs).Msg("Instances terminating")
	return &entity.TerminateInstancesResponse{TerminatingInstances: changes}, nil
}

// resolveCounts 归一化创建数量
// count 是 min_count = max_count = count 的简写，都缺省时创建 1 台
func resolveCounts(req *entity.RunInstancesRequest) (int32, int32) {
	if req.Count > 0 {
		return req.Count, req.Count
	}

	minCount := req.MinCount
	if minCount == 0 {
		minCount = 1
	}
	maxCount := req.MaxCount
	if maxCount == 0 {
		maxCount = minCount
	}
	return minCount, maxCount
}
