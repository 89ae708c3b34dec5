package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/internal/jcp/entity"
	"github.com/jimyag/jcp/internal/jcp/service"
	"github.com/jimyag/jcp/pkg/ginx"
	"github.com/rs/zerolog"
)

// KeyPairServiceInterface 定义密钥对服务的接口
type KeyPairServiceInterface interface {
	CreateKeyPair(ctx context.Context, req *entity.CreateKeyPairRequest) (*entity.CreateKeyPairResponse, error)
	ImportKeyPair(ctx context.Context, req *entity.ImportKeyPairRequest) (*entity.ImportKeyPairResponse, error)
}

type KeyPair struct {
	keyPairService KeyPairServiceInterface
}

func NewKeyPair(keyPairService *service.KeyPairService) *KeyPair {
	return &KeyPair{
		keyPairService: keyPairService,
	}
}

func (k *KeyPair) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", ginx.Adapt5(k.CreateKeyPair))
	router.POST("/import", ginx.Adapt5(k.ImportKeyPair))
}

func (k *KeyPair) CreateKeyPair(ctx *gin.Context, req *entity.CreateKeyPairRequest) (*entity.CreateKeyPairResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("key_name", req.KeyName).
		Msg("CreateKeyPair called")

	response, err := k.keyPairService.CreateKeyPair(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create key pair")
		return nil, err
	}

	logger.Info().
		Str("key_name", response.KeyPair.KeyName).
		Bool("reused", response.KeyPair.Reused).
		Msg("Key pair created successfully")

	return response, nil
}

func (k *KeyPair) ImportKeyPair(ctx *gin.Context, req *entity.ImportKeyPairRequest) (*entity.ImportKeyPairResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("key_name", req.KeyName).
		Msg("ImportKeyPair called")

	response, err := k.keyPairService.ImportKeyPair(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to import key pair")
		return nil, err
	}

	logger.Info().
		Str("key_name", response.KeyPair.KeyName).
		Str("algorithm", response.KeyPair.Algorithm).
		Msg("Key pair imported successfully")

	return response, nil
}
