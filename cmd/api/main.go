package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sofili-studio/studio-backend/config"
	"github.com/sofili-studio/studio-backend/internal/bootstrap"
	"github.com/sofili-studio/studio-backend/internal/designs"
	cronjob "github.com/sofili-studio/studio-backend/internal/designs/cron"
	"github.com/sofili-studio/studio-backend/internal/logger"
	"github.com/sofili-studio/studio-backend/internal/storage/postgres"
	"github.com/sofili-studio/studio-backend/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config: %v", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.ParseLevel(cfg.App.LogLevel))
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// Startup failure is fatal: serving without the store is not an option.
	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		logger.Errorf("postgres: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Errorf("postgres: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := postgres.EnsureSchema(ctx, sqlDB); err != nil {
		logger.Errorf("postgres: %v", err)
		os.Exit(1)
	}

	var (
		rdb   *redis.Client
		cache *users.Cache
	)
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			logger.Errorf("redis: %v", err)
			os.Exit(1)
		}
		defer rdb.Close()
		cache = users.NewCache(rdb, 10*time.Minute)
	}

	if cfg.App.ReviewReportCron != "" {
		sched := cronjob.NewScheduler()
		if err := sched.Start(cfg.App.ReviewReportCron, designs.NewRepo(sqlDB)); err != nil {
			logger.Errorf("review report cron: %v", err)
			os.Exit(1)
		}
		defer sched.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  cfg.App.ServiceName,
		Version:      cfg.App.Version,
		MaxBodyBytes: cfg.App.MaxBodyBytes,
		DB:           pool,
		SQL:          sqlDB,
		Cache:        cache,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("%s listening on :%s/v1", cfg.App.ServiceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
