package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notekeeper/internal/app/server/api"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/activity"
	"notekeeper/internal/domain/session"
	"notekeeper/internal/infrastructure/storage/postgres"
	"notekeeper/internal/utils/logger"
)

const (
	shutdownTimeout      = 10 * time.Second
	sessionPruneInterval = time.Hour
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("ошибка подключения к базе данных", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	tracker := activity.NewTracker(activity.DefaultCapacity, log)
	sessions := session.NewService(postgres.NewSessionRepository(storage, log), log)

	mux := api.New(storage, sessions, tracker, log)

	pruneCtx, stopPrune := context.WithCancel(context.Background())
	defer stopPrune()
	go func() {
		ticker := time.NewTicker(sessionPruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pruneCtx.Done():
				return
			case <-ticker.C:
				sessions.PruneExpired(pruneCtx)
			}
		}
	}()

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	go func() {
		log.Info("сервер запущен", "address", cfg.Server.RunAddress, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ошибка сервера", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("останавливаем сервер")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("ошибка остановки сервера", "error", err)
	}
}
