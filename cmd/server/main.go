package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/phenomvv/aetherapp/internal/config"
	"github.com/phenomvv/aetherapp/internal/serverapp"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load("aether_config.yml")
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	handler, err := serverapp.NewHandler(context.Background(), serverapp.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
