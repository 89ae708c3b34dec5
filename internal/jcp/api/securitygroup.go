package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/internal/jcp/service"
	"github.com/jimyag/jcp/pkg/ginx"
	"github.com/rs/zerolog"
)

// SecurityGroupServiceInterface 定义安全组服务的接口
type SecurityGroupServiceInterface interface {
	CreateSecurityGroup(ctx context.Context, req *entity.CreateSecurityGroupRequest) (*entity.CreateSecurityGroupResponse, error)
	AttachSecurityGroup(ctx context.Context, req *entity.AttachSecurityGroupRequest) (*entity.AttachSecurityGroupResponse, error)
}

type SecurityGroup struct {
	securityGroupService SecurityGroupServiceInterface
}

func NewSecurityGroup(securityGroupService *service.SecurityGroupService) *SecurityGroup {
	return &SecurityGroup{
		securityGroupService: securityGroupService,
	}
}

func (s *SecurityGroup) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", ginx.Adapt5(s.CreateSecurityGroup))
	router.POST("/attach", ginx.Adapt5(s.AttachSecurityGroup))
}

func (s *SecurityGroup) CreateSecurityGroup(ctx *gin.Context, req *entity.CreateSecurityGroupRequest) (*entity.CreateSecurityGroupResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("group_name", req.GroupName).
		Int("rules", len(req.Rules)).
		Msg("CreateSecurityGroup called")

	response, err := s.securityGroupService.CreateSecurityGroup(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create security group")
		return nil, err
	}

	logger.Info().
		Str("group_id", response.GroupID).
		Bool("reused", response.Reused).
		Int("new_rules", len(response.NewRules)).
		Msg("Security group created successfully")

	return response, nil
}

func (s *SecurityGroup) AttachSecurityGroup(ctx *gin.Context, req *entity.AttachSecurityGroupRequest) (*entity.AttachSecurityGroupResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("instance_id", req.InstanceID).
		Str("group_id", req.GroupID).
		Msg("AttachSecurityGroup called")

	response, err := s.securityGroupService.AttachSecurityGroup(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("instance_id", req.InstanceID).
			Msg("Failed to attach security group")
		return nil, err
	}

	logger.Info().
		Str("instance_id", response.InstanceID).
		Strs("group_ids", response.GroupIDs).
		Msg("Security group attached successfully")

	return response, nil
}
