package main

import (
	"fmt"

	"studio-backoffice/internal/config"
	"studio-backoffice/internal/server"
	"studio-backoffice/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	var log *zap.Logger
	var err error
	if cfg.Env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store, err := storage.Open(cfg, log)
	if err != nil {
		log.Fatal("storage init failed", zap.Error(err))
	}

	r := server.NewRouter(cfg, store, log)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
