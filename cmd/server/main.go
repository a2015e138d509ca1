package main

import (
	"context"
	"fmt"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/crypto"
	"github.com/CemWebDev/python-todo-backend/internal/handler"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/server"
	"github.com/CemWebDev/python-todo-backend/internal/service"
	"github.com/CemWebDev/python-todo-backend/internal/store"
	"github.com/CemWebDev/python-todo-backend/internal/workers"
	"github.com/CemWebDev/python-todo-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("todo-server", "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger("todo-server", cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hashers := workers.NewPool("hashers", cfg.Workers.Hashers, log)
	background := workers.NewWorkers(hashers)
	background.Run()
	defer background.Stop()

	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost, hashers, log)

	services, err := service.NewServices(storages, *cfg, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
