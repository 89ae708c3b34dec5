package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/internal/jcp/service"
	"github.com/jimyag/jcp/pkg/ginx"
	"github.com/rs/zerolog"
)

// InstanceServiceInterface 定义实例服务的接口
type InstanceServiceInterface interface {
	RunInstances(ctx context.Context, req *entity.RunInstancesRequest) (*entity.RunInstancesResponse, error)
	TerminateInstance(ctx context.Context, instanceID string) (*entity.InstanceStateChange, error)
	TerminateInstances(ctx context.Context, req *entity.TerminateInstancesRequest) (*entity.TerminateInstancesResponse, error)
}

type Instance struct {
	instanceService InstanceServiceInterface
}

func NewInstance(instanceService *service.InstanceService) *Instance {
	return &Instance{
		instanceService: instanceService,
	}
}

func (i *Instance) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", ginx.Adapt5(i.RunInstances))
	router.POST("/terminate", ginx.Adapt5(i.TerminateInstances))
	router.DELETE("/:instance_id", ginx.Adapt5(i.TerminateInstance))
}

func (i *Instance) RunInstances(ctx *gin.Context, req *entity.RunInstancesRequest) (*entity.RunInstancesResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("image_id", req.ImageID).
		Str("instance_type", req.InstanceType).
		Int32("count", req.Count).
		Msg("RunInstances called")

	response, err := i.instanceService.RunInstances(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to run instances")
		return nil, err
	}

	logger.Info().
		Strs("instance_ids", response.InstanceIDs).
		Msg("Instances launched successfully")

	return response, nil
}

func (i *Instance) TerminateInstance(ctx *gin.Context, req *entity.TerminateInstanceRequest) (*entity.InstanceStateChange, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("instance_id", req.InstanceID).
		Msg("TerminateInstance called")

	change, err := i.instanceService.TerminateInstance(ctx, req.InstanceID)
	if err != nil {
		logger.Error().
			Err(err).
			Str("instance_id", req.InstanceID).
			Msg("Failed to terminate instance")
		return nil, err
	}

	logger.Info().
		Str("instance_id", change.InstanceID).
		Str("previous_state", change.PreviousState).
		Str("current_state", change.CurrentState).
		Msg("Instance terminated successfully")

	return change, nil
}

func (i *Instance) TerminateInstances(ctx *gin.Context, req *entity.TerminateInstancesRequest) (*entity.TerminateInstancesResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Strs("instance_ids", req.InstanceIDs).
		Msg("TerminateInstances called")

	response, err := i.instanceService.TerminateInstances(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to terminate instances")
		return nil, err
	}

	logger.Info().
		Int("count", len(response.TerminatingInstances)).
		Msg("Instances terminated successfully")

	return response, nil
}
