package queuesvc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
	"github.com/mwhahaha/directord/internal/broker"
)

func newServiceForTest(t *testing.T) *Service {
	t.Helper()
	return New(broker.New())
}

func TestPutGetRoundTrip(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()

	data := &directordv1.MessageData{
		Identity: "client1",
		MsgID:    "m-1",
		Command:  "RUN",
		Data:     `{"cmd":"uptime"}`,
	}
	st, err := svc.PutMessage(ctx, &directordv1.PutMessageRequest{Target: "host1", Data: data})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !st.Result || st.UUID == "" {
		t.Fatalf("put status: %+v", st)
	}

	resp, err := svc.GetMessage(ctx, &directordv1.GetMessageRequest{Target: "host1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !resp.Status || resp.Target != "host1" {
		t.Fatalf("get response: %+v", resp)
	}
	if *resp.Data != *data {
		t.Fatalf("envelope round trip: want %+v got %+v", data, resp.Data)
	}

	resp2, err := svc.GetMessage(ctx, &directordv1.GetMessageRequest{Target: "host1"})
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if resp2.Status || resp2.Data != nil {
		t.Fatalf("second get delivered again: %+v", resp2)
	}
}

func TestGetMissIsSoft(t *testing.T) {
	svc := newServiceForTest(t)
	resp, err := svc.GetJob(context.Background(), &directordv1.GetJobRequest{Target: "unknown"})
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if resp.Status || resp.Data != nil {
		t.Fatalf("miss response: %+v", resp)
	}
	chk, err := svc.JobCheck(context.Background(), &directordv1.CheckRequest{Target: "unknown"})
	if err != nil || chk.HasData {
		t.Fatalf("miss-get created a queue: %+v err=%v", chk, err)
	}
}

func TestEmptyTargetInvalidArgument(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()

	_, err := svc.PutJob(ctx, &directordv1.PutJobRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("put: want InvalidArgument got %v", err)
	}
	_, err = svc.GetMessage(ctx, &directordv1.GetMessageRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("get: want InvalidArgument got %v", err)
	}
	_, err = svc.MessageCheck(ctx, &directordv1.CheckRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("check: want InvalidArgument got %v", err)
	}
}

func TestPutNilDataEnqueuesEmptyEnvelope(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	if _, err := svc.PutMessage(ctx, &directordv1.PutMessageRequest{Target: "host1"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	resp, err := svc.GetMessage(ctx, &directordv1.GetMessageRequest{Target: "host1"})
	if err != nil || !resp.Status {
		t.Fatalf("get: %+v err=%v", resp, err)
	}
	if *resp.Data != (directordv1.MessageData{}) {
		t.Fatalf("expected empty envelope, got %+v", resp.Data)
	}
}

func TestPurgeAlwaysSucceeds(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	svc.PutMessage(ctx, &directordv1.PutMessageRequest{Target: "host1", Data: &directordv1.MessageData{}})

	for i := 0; i < 2; i++ {
		st, err := svc.PurgeQueues(ctx, &directordv1.BasicRequest{Verbose: i == 0})
		if err != nil || !st.Result {
			t.Fatalf("purge %d: %+v err=%v", i, st, err)
		}
	}
	chk, _ := svc.MessageCheck(ctx, &directordv1.CheckRequest{Target: "host1"})
	if chk.HasData {
		t.Fatalf("data survived purge")
	}
}

func TestQueueStatsWithFilter(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	svc.PutMessage(ctx, &directordv1.PutMessageRequest{Target: "host1", Data: &directordv1.MessageData{}})
	svc.PutMessage(ctx, &directordv1.PutMessageRequest{Target: "host1", Data: &directordv1.MessageData{}})
	svc.PutJob(ctx, &directordv1.PutJobRequest{Target: "worker1", Data: &directordv1.MessageData{}})

	all, err := svc.QueueStats(ctx, &directordv1.StatsRequest{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(all.Queues) != 2 {
		t.Fatalf("stats len: want 2 got %d", len(all.Queues))
	}

	deep, err := svc.QueueStats(ctx, &directordv1.StatsRequest{Filter: `depth > 1`})
	if err != nil {
		t.Fatalf("filtered stats: %v", err)
	}
	if len(deep.Queues) != 1 || deep.Queues[0].Target != "host1" || deep.Queues[0].Kind != "message" {
		t.Fatalf("filtered stats: %+v", deep.Queues)
	}

	jobs, err := svc.QueueStats(ctx, &directordv1.StatsRequest{Filter: `kind == "job"`})
	if err != nil {
		t.Fatalf("kind filter: %v", err)
	}
	if len(jobs.Queues) != 1 || jobs.Queues[0].Target != "worker1" {
		t.Fatalf("kind filter: %+v", jobs.Queues)
	}
}

func TestQueueStatsInvalidFilter(t *testing.T) {
	svc := newServiceForTest(t)
	_, err := svc.QueueStats(context.Background(), &directordv1.StatsRequest{Filter: `depth >`})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument got %v", err)
	}
}
