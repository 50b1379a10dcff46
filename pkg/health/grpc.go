package health

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// GRPCServer exposes the health service over gRPC.
type GRPCServer struct {
	server *grpc.Server
	logger *zap.Logger
}

// NewGRPCServer registers checker's health service on a new gRPC server.
func NewGRPCServer(checker *Checker, logger *zap.Logger) *GRPCServer {
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, checker.Server())
	return &GRPCServer{server: srv, logger: logger}
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *GRPCServer) ListenAndServe(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping gRPC health server")
			s.server.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info("gRPC health server listening", zap.String("address", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
