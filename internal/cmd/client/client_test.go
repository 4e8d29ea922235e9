package client

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
	"github.com/mwhahaha/directord/internal/broker"
	queuesvc "github.com/mwhahaha/directord/internal/services/queues"
)

// startServer serves the queues service on an ephemeral TCP port and returns
// its address. The service facade implements the server interface directly.
func startServer(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	directordv1.RegisterMessageServiceServer(srv, queuesvc.New(broker.New()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func TestClientRoundTrip(t *testing.T) {
	addr := startServer(t)
	c, err := Dial(addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data := &directordv1.MessageData{Identity: "client1", MsgID: "m-1", Command: "RUN"}
	ok, err := c.PutMessage(ctx, "host1", data)
	if err != nil || !ok {
		t.Fatalf("put: ok=%v err=%v", ok, err)
	}

	has, err := c.MessageCheck(ctx, "host1")
	if err != nil || !has {
		t.Fatalf("check: has=%v err=%v", has, err)
	}

	env, ok, err := c.GetMessage(ctx, "host1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if *env != *data {
		t.Fatalf("round trip: want %+v got %+v", data, env)
	}

	if _, ok, err = c.GetMessage(ctx, "host1"); err != nil || ok {
		t.Fatalf("second get: ok=%v err=%v", ok, err)
	}
}

func TestClientJobAndPurge(t *testing.T) {
	addr := startServer(t)
	c, err := Dial(addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if ok, err := c.PutJob(ctx, "w1", &directordv1.MessageData{MsgID: "j-1"}); err != nil || !ok {
		t.Fatalf("put job: ok=%v err=%v", ok, err)
	}
	stats, err := c.QueueStats(ctx, `kind == "job" && depth > 0`)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Target != "w1" {
		t.Fatalf("stats: %+v", stats)
	}

	if ok, err := c.PurgeQueues(ctx, false); err != nil || !ok {
		t.Fatalf("purge: ok=%v err=%v", ok, err)
	}
	if has, err := c.JobCheck(ctx, "w1"); err != nil || has {
		t.Fatalf("job survived purge: has=%v err=%v", has, err)
	}
}

func TestServerAddrResolution(t *testing.T) {
	if got := serverAddr("1.2.3.4:5"); got != "1.2.3.4:5" {
		t.Fatalf("flag precedence: %s", got)
	}
	t.Setenv("DIRECTORD_GRPC_SERVER_ADDRESS", "env-host:5558")
	if got := serverAddr(""); got != "env-host:5558" {
		t.Fatalf("env fallback: %s", got)
	}
	t.Setenv("DIRECTORD_GRPC_SERVER_ADDRESS", "")
	if got := serverAddr(""); got != defaultServerAddr {
		t.Fatalf("default fallback: %s", got)
	}
}
