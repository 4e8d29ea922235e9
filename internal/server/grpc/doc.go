// Package grpcserver hosts the gRPC server for directord, registering the
// MessageService and delegating to the shared queues service layer.
//
// Example:
//
//	svc := queuesvc.New(broker.New())
//	s := grpcserver.New(svc)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":5558")
package grpcserver
