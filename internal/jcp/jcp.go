// Package jcp 提供 JCP 服务器的主入口和初始化逻辑
package jcp

import (
	"context"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/jcp/internal/jcp/api"
	"github.com/jimyag/jcp/internal/jcp/config"
	"github.com/jimyag/jcp/internal/jcp/service"
	"github.com/jimyag/jcp/pkg/ec2"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg *config.Config
	api *api.API
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 创建 EC2 Client
	ec2Client, err := ec2.New(context.Background(), cfg.Region)
	if err != nil {
		return nil, err
	}

	// 2. 创建 KeyPair Service
	keyPairService := service.NewKeyPairService(ec2Client, cfg.KeyPairDir)

	// 3. 创建 SecurityGroup Service
	securityGroupService := service.NewSecurityGroupService(ec2Client)

	// 4. 创建 Instance Service
	instanceService := service.NewInstanceService(
		ec2Client,
		keyPairService,
		securityGroupService,
		cfg.DefaultImageID,
		cfg.DefaultInstanceType,
		cfg.EnableSecurityGroups,
	)

	// 5. 创建 API
	apiInstance, err := api.New(
		cfg.Address,
		instanceService,
		keyPairService,
		securityGroupService,
		cfg.EnableSecurityGroups,
	)
	if err != nil {
		return nil, err
	}

	server := &Server{
		cfg: cfg,
		api: apiInstance,
	}
	return server, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.api.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "JCP Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
