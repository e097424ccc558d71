package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chefskiss/festival-api/internal/api"
	"github.com/chefskiss/festival-api/internal/config"
	"github.com/chefskiss/festival-api/internal/db"
	"github.com/chefskiss/festival-api/internal/logger"
	"github.com/chefskiss/festival-api/internal/notify"
	"github.com/chefskiss/festival-api/internal/repository"
	"github.com/chefskiss/festival-api/internal/repository/dao"
	"github.com/chefskiss/festival-api/internal/service"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 10 * time.Second
)

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	config.Watch(configPath, func(c *config.AppConfig) {
		if err := logger.SetLevel(c.API.LogLevel); err != nil {
			zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("log_level", c.API.LogLevel))
	}, func(err error) {
		zap.L().Warn("config reload failed", zap.Error(err))
	})

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	var redisClient redis.Cmdable
	if conf.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		defer client.Close()
		redisClient = client
	} else {
		zap.L().Info("redis not configured, submissions are not rate limited")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher := service.NewDispatcher(
		repository.NewOutboxRepository(dao.NewOutboxDAO(postgresDB)),
		newNotifier(conf.Notifier),
		conf.Outbox,
	)
	go dispatcher.Run(ctx)

	s := api.NewServer(conf, postgresDB, redisClient)

	srv := &http.Server{
		Addr:    ":" + s.Config.API.Port,
		Handler: s.Router,
	}

	zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
	if err = serve(ctx, srv, shutdownTimeout); err != nil {
		return fmt.Errorf("failed to run the server -> %w", err)
	}

	zap.L().Info("server stopped")

	return nil
}

// serve runs srv until it fails or ctx is cancelled, then drains in-flight
// requests for at most timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown -> %w", err)
	}

	return nil
}

func newNotifier(conf *config.NotifierConfig) notify.Notifier {
	if conf.WebhookURL == "" {
		zap.L().Info("notifier webhook not configured, notifications are logged only")
		return notify.NewLogNotifier(zap.L())
	}

	return notify.NewWebhookNotifier(conf.WebhookURL, conf.APIKey, conf.Timeout)
}
