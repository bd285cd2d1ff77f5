package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	myredis "kama_contact_sync/internal/dao/redis"
	"kama_contact_sync/internal/handler"
	"kama_contact_sync/internal/https_server"
	"kama_contact_sync/internal/infrastructure/mq"
	"kama_contact_sync/internal/service"
	"kama_contact_sync/pkg/constants"
	"kama_contact_sync/pkg/util/jwt"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the contacts sync HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	conf := a.conf

	agg, err := a.aggregator()
	if err != nil {
		return err
	}

	// 初始化 JWT
	if conf.JWTConfig.Secret == "" {
		return errors.New("jwtConfig.secret is required to serve")
	}
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry)

	// 初始化翻译器
	if err := handler.InitTrans("zh"); err != nil {
		return fmt.Errorf("init validator translations: %w", err)
	}

	deps := service.Deps{Aggregator: agg, Aggregate: conf.AggregateConfig}

	// Redis 不可用时不保存水位
	client, err := myredis.NewClient(ctx, conf.RedisConfig)
	if err != nil {
		zap.L().Warn("redis unavailable, watermarks disabled", zap.Error(err))
	} else {
		defer client.Close()
		deps.Watermarks = myredis.NewWatermarkStore(myredis.NewRedisCache(client), conf.RedisConfig.KeyPrefix)
	}

	if conf.KafkaConfig.Enabled {
		// 写入器不自动建主题，启动时确保主题存在
		if err := mq.CreateTopics(conf.KafkaConfig); err != nil {
			zap.L().Warn("ensure kafka topics", zap.Error(err))
		}
		publisher := mq.NewSnapshotPublisher(conf.KafkaConfig)
		defer publisher.Close()
		deps.Publisher = publisher
	}

	engine := https_server.Init(conf.MainConfig, handler.NewHandlers(service.NewServices(deps)))
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("关闭服务器...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.SHUTDOWN_TIMEOUT_SEC*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zap.L().Info("服务器已关闭")
	return nil
}
