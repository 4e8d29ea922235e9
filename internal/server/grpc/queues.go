package grpcserver

import (
	"context"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
	queuesvc "github.com/mwhahaha/directord/internal/services/queues"
)

// messageSvc wraps the queues service for gRPC.
type messageSvc struct {
	directordv1.UnimplementedMessageServiceServer
	svc *queuesvc.Service
}

// GetMessage dequeues the oldest message for a target.
func (m *messageSvc) GetMessage(ctx context.Context, req *directordv1.GetMessageRequest) (*directordv1.MessageResponse, error) {
	return m.svc.GetMessage(ctx, req)
}

// GetJob dequeues the oldest job for a target.
func (m *messageSvc) GetJob(ctx context.Context, req *directordv1.GetJobRequest) (*directordv1.JobResponse, error) {
	return m.svc.GetJob(ctx, req)
}

// PutMessage queues a message for a target.
func (m *messageSvc) PutMessage(ctx context.Context, req *directordv1.PutMessageRequest) (*directordv1.Status, error) {
	return m.svc.PutMessage(ctx, req)
}

// PutJob queues a job for a target.
func (m *messageSvc) PutJob(ctx context.Context, req *directordv1.PutJobRequest) (*directordv1.Status, error) {
	return m.svc.PutJob(ctx, req)
}

// MessageCheck reports whether a target has queued messages.
func (m *messageSvc) MessageCheck(ctx context.Context, req *directordv1.CheckRequest) (*directordv1.CheckResponse, error) {
	return m.svc.MessageCheck(ctx, req)
}

// JobCheck reports whether a target has queued jobs.
func (m *messageSvc) JobCheck(ctx context.Context, req *directordv1.CheckRequest) (*directordv1.CheckResponse, error) {
	return m.svc.JobCheck(ctx, req)
}

// PurgeQueues drops every queue for both kinds.
func (m *messageSvc) PurgeQueues(ctx context.Context, req *directordv1.BasicRequest) (*directordv1.Status, error) {
	return m.svc.PurgeQueues(ctx, req)
}

// QueueStats enumerates live queues.
func (m *messageSvc) QueueStats(ctx context.Context, req *directordv1.StatsRequest) (*directordv1.StatsResponse, error) {
	return m.svc.QueueStats(ctx, req)
}
