package directordv1

import (
	"context"

	"google.golang.org/grpc"
)

// MessageServiceClient is the client API for the directord.v1.MessageService
// service.
type MessageServiceClient interface {
	GetMessage(ctx context.Context, in *GetMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*JobResponse, error)
	PutMessage(ctx context.Context, in *PutMessageRequest, opts ...grpc.CallOption) (*Status, error)
	PutJob(ctx context.Context, in *PutJobRequest, opts ...grpc.CallOption) (*Status, error)
	MessageCheck(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error)
	JobCheck(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error)
	PurgeQueues(ctx context.Context, in *BasicRequest, opts ...grpc.CallOption) (*Status, error)
	QueueStats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
}

type messageServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMessageServiceClient returns a MessageServiceClient on cc. Every call
// carries the directord JSON content-subtype so the peer selects the right
// codec.
func NewMessageServiceClient(cc grpc.ClientConnInterface) MessageServiceClient {
	return &messageServiceClient{cc: cc}
}

func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *messageServiceClient) GetMessage(ctx context.Context, in *GetMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	out := new(MessageResponse)
	if err := c.cc.Invoke(ctx, MessageServiceGetMessageMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*JobResponse, error) {
	out := new(JobResponse)
	if err := c.cc.Invoke(ctx, MessageServiceGetJobMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) PutMessage(ctx context.Context, in *PutMessageRequest, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, MessageServicePutMessageMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) PutJob(ctx context.Context, in *PutJobRequest, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, MessageServicePutJobMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) MessageCheck(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	out := new(CheckResponse)
	if err := c.cc.Invoke(ctx, MessageServiceMessageCheckMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) JobCheck(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	out := new(CheckResponse)
	if err := c.cc.Invoke(ctx, MessageServiceJobCheckMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) PurgeQueues(ctx context.Context, in *BasicRequest, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, MessageServicePurgeQueuesMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) QueueStats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	out := new(StatsResponse)
	if err := c.cc.Invoke(ctx, MessageServiceQueueStatsMethod, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
