package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ataa-grants/grants-backend/config"
	"github.com/ataa-grants/grants-backend/internal/aireview"
	aireviewhttp "github.com/ataa-grants/grants-backend/internal/aireview/http"
	"github.com/ataa-grants/grants-backend/internal/bootstrap"
	"github.com/ataa-grants/grants-backend/internal/notify"
	"github.com/ataa-grants/grants-backend/internal/ops"
	"github.com/ataa-grants/grants-backend/internal/proposals/repository"
	"github.com/ataa-grants/grants-backend/internal/proposals/service"
)

const serviceName = "grants-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("open redis", zap.Error(err))
	}
	defer rdb.Close()

	feed := notify.NewFeed(rdb)
	proposalRepo := repository.New(pool)
	proposalSvc := service.NewProposalService(proposalRepo, feed, logger)

	var reviewer aireviewhttp.Reviewer
	if cfg.AI.APIKey != "" {
		client, err := aireview.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			logger.Warn("ai review disabled", zap.Error(err))
		} else {
			reviewer = client
		}
	} else {
		logger.Warn("ai review disabled: GEMINI_API_KEY not set")
	}

	digest := ops.NewDigest(proposalSvc, logger)
	if err := digest.Start(); err != nil {
		logger.Warn("digest scheduler not started", zap.Error(err))
	}
	defer digest.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AdminPassword:  cfg.Admin.Password,
		SessionTTL:     time.Duration(cfg.Admin.SessionTTLHours) * time.Hour,
		DB:             pool,
		Redis:          rdb,
		Proposals:      proposalSvc,
		Feed:           feed,
		Reviewer:       reviewer,
		Log:            logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
