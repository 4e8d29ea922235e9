package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
)

// Client wraps the MessageService client with directord-shaped helpers. A
// soft miss on Get (absent or empty queue) is reported through the boolean,
// matching the server contract.
type Client struct {
	conn *grpc.ClientConn
	cli  directordv1.MessageServiceClient
}

// Dial connects to a directord server at addr.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, cli: directordv1.NewMessageServiceClient(conn)}, nil
}

// Close tears down the connection.
func (c *Client) Close() error { return c.conn.Close() }

// PutMessage queues data as a message for target.
func (c *Client) PutMessage(ctx context.Context, target string, data *directordv1.MessageData) (bool, error) {
	st, err := c.cli.PutMessage(ctx, &directordv1.PutMessageRequest{Target: target, Data: data})
	if err != nil {
		return false, err
	}
	return st.Result, nil
}

// PutJob queues data as a job for target.
func (c *Client) PutJob(ctx context.Context, target string, data *directordv1.MessageData) (bool, error) {
	st, err := c.cli.PutJob(ctx, &directordv1.PutJobRequest{Target: target, Data: data})
	if err != nil {
		return false, err
	}
	return st.Result, nil
}

// GetMessage fetches the oldest queued message for target.
func (c *Client) GetMessage(ctx context.Context, target string) (*directordv1.MessageData, bool, error) {
	resp, err := c.cli.GetMessage(ctx, &directordv1.GetMessageRequest{Target: target})
	if err != nil {
		return nil, false, err
	}
	if !resp.Status {
		return nil, false, nil
	}
	return resp.Data, true, nil
}

// GetJob fetches the oldest queued job for target.
func (c *Client) GetJob(ctx context.Context, target string) (*directordv1.MessageData, bool, error) {
	resp, err := c.cli.GetJob(ctx, &directordv1.GetJobRequest{Target: target})
	if err != nil {
		return nil, false, err
	}
	if !resp.Status {
		return nil, false, nil
	}
	return resp.Data, true, nil
}

// MessageCheck reports whether target has queued messages.
func (c *Client) MessageCheck(ctx context.Context, target string) (bool, error) {
	resp, err := c.cli.MessageCheck(ctx, &directordv1.CheckRequest{Target: target})
	if err != nil {
		return false, err
	}
	return resp.HasData, nil
}

// JobCheck reports whether target has queued jobs.
func (c *Client) JobCheck(ctx context.Context, target string) (bool, error) {
	resp, err := c.cli.JobCheck(ctx, &directordv1.CheckRequest{Target: target})
	if err != nil {
		return false, err
	}
	return resp.HasData, nil
}

// PurgeQueues drops every queue on the server, both kinds.
func (c *Client) PurgeQueues(ctx context.Context, verbose bool) (bool, error) {
	st, err := c.cli.PurgeQueues(ctx, &directordv1.BasicRequest{Verbose: verbose})
	if err != nil {
		return false, err
	}
	return st.Result, nil
}

// QueueStats enumerates live queues; filter is an optional CEL expression.
func (c *Client) QueueStats(ctx context.Context, filter string) ([]*directordv1.QueueStat, error) {
	resp, err := c.cli.QueueStats(ctx, &directordv1.StatsRequest{Filter: filter})
	if err != nil {
		return nil, err
	}
	return resp.Queues, nil
}
