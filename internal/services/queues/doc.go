// Package queuesvc provides the service layer for the message and job queue
// operations, shared by the gRPC and HTTP servers.
//
// Example:
//
//	svc := queuesvc.New(broker.New())
//	resp, _ := svc.PutMessage(ctx, &directordv1.PutMessageRequest{
//	    Target: "host1",
//	    Data:   &directordv1.MessageData{Identity: "server", Command: "RUN"},
//	})
package queuesvc
