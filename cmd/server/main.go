package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/config"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/logging"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/server"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/source"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ResolvePath(""))
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		logrus.Fatalf("failed to initialize logger: %v", err)
	}

	src, err := source.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open employee source: %v", err)
	}
	defer src.Close()

	reportSvc := orgreport.NewService(src.Repository, nil, src.Tx)
	grpcServer := server.New(cfg.Server.ListenAddr, reportSvc, logger.WithField("component", "grpc"))

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatalf("server stopped with error: %v", err)
	}
}
