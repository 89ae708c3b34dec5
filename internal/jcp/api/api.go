package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jcp/internal/jcp/metrics"
	"github.com/jimyag/jcp/internal/jcp/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	instance      *Instance
	keyPair       *KeyPair
	securityGroup *SecurityGroup
	health        *Health
}

func New(
	address string,
	instanceService *service.InstanceService,
	keyPairService *service.KeyPairService,
	securityGroupService *service.SecurityGroupService,
	enableSecurityGroups bool,
) (*API, error) {
	metrics.Init()

	engine := gin.Default()
	// 让 gin.Context 透传底层 Request Context 的截止时间和取消信号
	engine.ContextWithFallback = true
	engine.Use(RequestID(), Metrics())

	api := &API{
		engine:        engine,
		instance:      NewInstance(instanceService),
		keyPair:       NewKeyPair(keyPairService),
		securityGroup: NewSecurityGroup(securityGroupService),
		health:        NewHealth(),
	}

	api.health.RegisterRoutes(engine.Group(""))
	api.instance.RegisterRoutes(engine.Group("/instances"))
	api.keyPair.RegisterRoutes(engine.Group("/keypairs"))
	if enableSecurityGroups {
		api.securityGroup.RegisterRoutes(engine.Group("/security-groups"))
	}
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	printRoutes(engine)

	api.server = &http.Server{
		Addr:    address,
		Handler: engine,
	}
	return api, nil
}

func (a *API) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "API Server"
}

// printRoutes 启动时打印所有已注册的路由
func printRoutes(engine *gin.Engine) {
	logger := zerolog.DefaultContextLogger
	if logger == nil {
		return
	}
	for _, route := range engine.Routes() {
		logger.Info().
			Str("method", route.Method).
			Str("path", route.Path).
			Msg("Route registered")
	}
}
