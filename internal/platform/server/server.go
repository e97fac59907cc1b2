package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/ogurasousui/codex-org-analyzer/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-org-analyzer/internal/adapters/grpc/orgreportv1"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	logger     *logrus.Entry
}

// New は指定されたアドレスで待ち受け、OrgReportService を公開する gRPC サーバーを構築します。
func New(listenAddr string, reports orgreport.UseCase, logger *logrus.Entry, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	srv := grpc.NewServer(opts...)
	orgreportv1.RegisterOrgReportServiceServer(srv, handler.NewOrgReportHandler(reports, logger.WithField("service", orgreportv1.ServiceName)))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		logger:     logger,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	return s.Serve(ctx, lis)
}

// Serve は lis で待ち受けます。コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down gRPC server")
		s.grpcServer.GracefulStop()
	}()

	s.logger.WithField("addr", lis.Addr().String()).Info("gRPC server listening")
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
