package grpcserver

import (
	"context"
	"net"

	"google.golang.org/grpc"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
	queuesvc "github.com/mwhahaha/directord/internal/services/queues"
)

// Server owns the gRPC server instance and the queues service.
type Server struct {
	svc  *queuesvc.Service
	grpc *grpc.Server
	lis  net.Listener
}

// New constructs a gRPC server and registers the MessageService.
func New(svc *queuesvc.Service, opts ...grpc.ServerOption) *Server {
	s := &Server{svc: svc, grpc: grpc.NewServer(opts...)}
	directordv1.RegisterMessageServiceServer(s.grpc, &messageSvc{svc: svc})
	return s
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
