package queuesvc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
	"github.com/mwhahaha/directord/internal/broker"
	logpkg "github.com/mwhahaha/directord/pkg/log"
)

// Service translates wire requests into broker calls. Both the gRPC and the
// HTTP servers delegate here, so the two transports cannot drift apart.
//
// Failures follow the contract: a miss on Get/Check is a normal soft result,
// and only malformed requests (empty target, bad filter expression) produce
// an error, carried as a gRPC status so either transport can map it.
type Service struct {
	bkr    *broker.Broker
	logger logpkg.Logger
}

// New creates a Service with default logging.
func New(bkr *broker.Broker) *Service {
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
	return NewWithLogger(bkr, logger.WithComponent("queues"))
}

// NewWithLogger creates a Service with a custom logger.
func NewWithLogger(bkr *broker.Broker, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel)).WithComponent("queues")
	}
	return &Service{bkr: bkr, logger: logger}
}

// Broker exposes the underlying broker for in-process callers and tests.
func (s *Service) Broker() *broker.Broker { return s.bkr }

func wireErr(err error) error {
	if errors.Is(err, broker.ErrEmptyTarget) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func toEnvelope(d *directordv1.MessageData) broker.Envelope {
	if d == nil {
		return broker.Envelope{}
	}
	return broker.Envelope{
		Identity: d.Identity,
		MsgID:    d.MsgID,
		Control:  d.Control,
		Command:  d.Command,
		Data:     d.Data,
		Info:     d.Info,
		Stderr:   d.Stderr,
		Stdout:   d.Stdout,
	}
}

func fromEnvelope(env broker.Envelope) *directordv1.MessageData {
	return &directordv1.MessageData{
		Identity: env.Identity,
		MsgID:    env.MsgID,
		Control:  env.Control,
		Command:  env.Command,
		Data:     env.Data,
		Info:     env.Info,
		Stderr:   env.Stderr,
		Stdout:   env.Stdout,
	}
}

// GetMessage dequeues the oldest message for the target. A miss returns
// Status=false, not an error.
func (s *Service) GetMessage(_ context.Context, req *directordv1.GetMessageRequest) (*directordv1.MessageResponse, error) {
	env, ok, err := s.bkr.Get(broker.KindMessage, req.Target)
	if err != nil {
		return nil, wireErr(err)
	}
	resp := &directordv1.MessageResponse{UUID: uuid.NewString(), Status: ok, Target: req.Target}
	if ok {
		resp.Data = fromEnvelope(env)
	}
	return resp, nil
}

// GetJob dequeues the oldest job for the target.
func (s *Service) GetJob(_ context.Context, req *directordv1.GetJobRequest) (*directordv1.JobResponse, error) {
	env, ok, err := s.bkr.Get(broker.KindJob, req.Target)
	if err != nil {
		return nil, wireErr(err)
	}
	resp := &directordv1.JobResponse{UUID: uuid.NewString(), Status: ok, Target: req.Target}
	if ok {
		resp.Data = fromEnvelope(env)
	}
	return resp, nil
}

// PutMessage enqueues a message for the target, creating its queue on first
// use.
func (s *Service) PutMessage(_ context.Context, req *directordv1.PutMessageRequest) (*directordv1.Status, error) {
	if err := s.bkr.Put(broker.KindMessage, req.Target, toEnvelope(req.Data)); err != nil {
		return nil, wireErr(err)
	}
	return &directordv1.Status{UUID: uuid.NewString(), Result: true}, nil
}

// PutJob enqueues a job for the target.
func (s *Service) PutJob(_ context.Context, req *directordv1.PutJobRequest) (*directordv1.Status, error) {
	if err := s.bkr.Put(broker.KindJob, req.Target, toEnvelope(req.Data)); err != nil {
		return nil, wireErr(err)
	}
	return &directordv1.Status{UUID: uuid.NewString(), Result: true}, nil
}

// MessageCheck reports whether the target has queued messages.
func (s *Service) MessageCheck(_ context.Context, req *directordv1.CheckRequest) (*directordv1.CheckResponse, error) {
	has, err := s.bkr.Check(broker.KindMessage, req.Target)
	if err != nil {
		return nil, wireErr(err)
	}
	return &directordv1.CheckResponse{Target: req.Target, HasData: has}, nil
}

// JobCheck reports whether the target has queued jobs.
func (s *Service) JobCheck(_ context.Context, req *directordv1.CheckRequest) (*directordv1.CheckResponse, error) {
	has, err := s.bkr.Check(broker.KindJob, req.Target)
	if err != nil {
		return nil, wireErr(err)
	}
	return &directordv1.CheckResponse{Target: req.Target, HasData: has}, nil
}

// PurgeQueues drops every queue for both kinds. Always succeeds; Verbose only
// toggles per-queue log detail server-side.
func (s *Service) PurgeQueues(_ context.Context, req *directordv1.BasicRequest) (*directordv1.Status, error) {
	s.bkr.Purge(req.Verbose)
	return &directordv1.Status{UUID: uuid.NewString(), Result: true}, nil
}

// QueueStats enumerates live queues, optionally filtered by a CEL expression
// over {kind, target, depth}. An invalid expression is an InvalidArgument
// error, never a silent match-all.
func (s *Service) QueueStats(_ context.Context, req *directordv1.StatsRequest) (*directordv1.StatsResponse, error) {
	filter, err := newStatFilter(req.Filter)
	if err != nil {
		s.logger.Warn("rejected stats filter", logpkg.F("filter", req.Filter), logpkg.F("error", err.Error()))
		return nil, status.Errorf(codes.InvalidArgument, "invalid filter: %v", err)
	}
	resp := &directordv1.StatsResponse{UUID: uuid.NewString()}
	for _, st := range s.bkr.Stats() {
		if !filter.Eval(st) {
			continue
		}
		resp.Queues = append(resp.Queues, &directordv1.QueueStat{
			Kind:   st.Kind.String(),
			Target: st.Target,
			Depth:  int64(st.Depth),
		})
	}
	return resp, nil
}
