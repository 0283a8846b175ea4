// cmd/server/main.go
package main

import (
	"log"

	"github.com/sozercan/web-data-gen/internal/config"
	"github.com/sozercan/web-data-gen/internal/logx"
	"github.com/sozercan/web-data-gen/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, closeLogs, err := logx.Init("web-data-gen", cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialise logging: %v", err)
	}
	defer closeLogs()

	srv, err := server.Build(*cfg, logger)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		logger.Error("server failed", "error", err)
		closeLogs()
		log.Fatalf("server failed: %v", err)
	}
}
