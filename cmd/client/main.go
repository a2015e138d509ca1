package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CemWebDev/python-todo-backend/internal/adapter"
	"github.com/CemWebDev/python-todo-backend/internal/client"
	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("todo-client", cfg.LogLevel)

	api, err := adapter.NewHTTPTodoClient(cfg.ServerURL, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating todo API client")
	}
	api.SetAPIKey(cfg.APIKey)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(log.WithContext(ctx), cfg.Args); err != nil {
		fmt.Fprintf(os.Stderr, "todo-client: %v\n", err)
		stop()
		os.Exit(1)
	}
}
