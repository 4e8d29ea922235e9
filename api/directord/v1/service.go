package directordv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "directord.v1.MessageService"

// Full method names for use with interceptors and interop tooling.
const (
	MessageServiceGetMessageMethod   = "/directord.v1.MessageService/GetMessage"
	MessageServiceGetJobMethod       = "/directord.v1.MessageService/GetJob"
	MessageServicePutMessageMethod   = "/directord.v1.MessageService/PutMessage"
	MessageServicePutJobMethod       = "/directord.v1.MessageService/PutJob"
	MessageServiceMessageCheckMethod = "/directord.v1.MessageService/MessageCheck"
	MessageServiceJobCheckMethod     = "/directord.v1.MessageService/JobCheck"
	MessageServicePurgeQueuesMethod  = "/directord.v1.MessageService/PurgeQueues"
	MessageServiceQueueStatsMethod   = "/directord.v1.MessageService/QueueStats"
)

// MessageServiceServer is the server API for the directord.v1.MessageService
// service. Implementations should embed UnimplementedMessageServiceServer.
type MessageServiceServer interface {
	GetMessage(context.Context, *GetMessageRequest) (*MessageResponse, error)
	GetJob(context.Context, *GetJobRequest) (*JobResponse, error)
	PutMessage(context.Context, *PutMessageRequest) (*Status, error)
	PutJob(context.Context, *PutJobRequest) (*Status, error)
	MessageCheck(context.Context, *CheckRequest) (*CheckResponse, error)
	JobCheck(context.Context, *CheckRequest) (*CheckResponse, error)
	PurgeQueues(context.Context, *BasicRequest) (*Status, error)
	QueueStats(context.Context, *StatsRequest) (*StatsResponse, error)
}

// UnimplementedMessageServiceServer provides forward-compatible default
// implementations returning codes.Unimplemented.
type UnimplementedMessageServiceServer struct{}

func (UnimplementedMessageServiceServer) GetMessage(context.Context, *GetMessageRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMessage not implemented")
}
func (UnimplementedMessageServiceServer) GetJob(context.Context, *GetJobRequest) (*JobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedMessageServiceServer) PutMessage(context.Context, *PutMessageRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method PutMessage not implemented")
}
func (UnimplementedMessageServiceServer) PutJob(context.Context, *PutJobRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method PutJob not implemented")
}
func (UnimplementedMessageServiceServer) MessageCheck(context.Context, *CheckRequest) (*CheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessageCheck not implemented")
}
func (UnimplementedMessageServiceServer) JobCheck(context.Context, *CheckRequest) (*CheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JobCheck not implemented")
}
func (UnimplementedMessageServiceServer) PurgeQueues(context.Context, *BasicRequest) (*Status, error) {
	return nil, status.Error(codes.Unimplemented, "method PurgeQueues not implemented")
}
func (UnimplementedMessageServiceServer) QueueStats(context.Context, *StatsRequest) (*StatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QueueStats not implemented")
}

// RegisterMessageServiceServer binds srv to s under the MessageService
// service descriptor.
func RegisterMessageServiceServer(s grpc.ServiceRegistrar, srv MessageServiceServer) {
	s.RegisterService(&MessageServiceDesc, srv)
}

func getMessageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).GetMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServiceGetMessageMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).GetMessage(ctx, req.(*GetMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getJobHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServiceGetJobMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func putMessageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).PutMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServicePutMessageMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).PutMessage(ctx, req.(*PutMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func putJobHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).PutJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServicePutJobMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).PutJob(ctx, req.(*PutJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func messageCheckHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).MessageCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServiceMessageCheckMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).MessageCheck(ctx, req.(*CheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func jobCheckHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).JobCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServiceJobCheckMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).JobCheck(ctx, req.(*CheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func purgeQueuesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BasicRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).PurgeQueues(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServicePurgeQueuesMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).PurgeQueues(ctx, req.(*BasicRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func queueStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).QueueStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessageServiceQueueStatsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).QueueStats(ctx, req.(*StatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MessageServiceDesc is the grpc.ServiceDesc for the MessageService. The
// binding is hand-maintained against proto/directord/v1/msg.proto; keep the
// two in sync when the schema changes.
var MessageServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetMessage", Handler: getMessageHandler},
		{MethodName: "GetJob", Handler: getJobHandler},
		{MethodName: "PutMessage", Handler: putMessageHandler},
		{MethodName: "PutJob", Handler: putJobHandler},
		{MethodName: "MessageCheck", Handler: messageCheckHandler},
		{MethodName: "JobCheck", Handler: jobCheckHandler},
		{MethodName: "PurgeQueues", Handler: purgeQueuesHandler},
		{MethodName: "QueueStats", Handler: queueStatsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/directord/v1/msg.proto",
}
