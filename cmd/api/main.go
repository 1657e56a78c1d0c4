package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/mikus2604/miniblog-backend/internal/api"
	"github.com/mikus2604/miniblog-backend/internal/api/handlers"
	"github.com/mikus2604/miniblog-backend/internal/config"
	"github.com/mikus2604/miniblog-backend/internal/db"
	"github.com/mikus2604/miniblog-backend/internal/logger"
	"github.com/mikus2604/miniblog-backend/internal/metrics"
	"github.com/mikus2604/miniblog-backend/internal/repository/postgres"
	"github.com/mikus2604/miniblog-backend/internal/services"
	"github.com/mikus2604/miniblog-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(runtime.GOMAXPROCS(0))
	defer wp.Stop()

	userSvc := services.NewUserService(repos.Users, wp, cfg)

	metrics.Init()
	r := api.NewRouter(handlers.NewUserHandler(userSvc), pool)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
