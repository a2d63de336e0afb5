package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"baratie/cmd/config"
	migration "baratie/cmd/database/migrate"
	"baratie/internal/utils"
)

func main() {
	utils.LoadConfig()
	logger := utils.NewLogger("baratie")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := migration.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	infra, err := config.NewInfrastructure(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up infrastructure")
	}
	defer infra.Close()

	app, err := config.NewApp(db, infra)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build app")
	}

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := config.RunNotificationConsumer(ctx, db, infra); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("notification consumer stopped")
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		port := utils.GetConfig("APP_PORT")
		logger.Info().Str("port", port).Msg("listening")
		serverErr <- app.Listen(":" + port)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
	}
}
