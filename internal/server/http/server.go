package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
	queuesvc "github.com/mwhahaha/directord/internal/services/queues"
)

// Server exposes the queue operations over JSON/HTTP with the same semantics
// as the gRPC surface: a miss is a 200 with status=false, only malformed
// requests are 4xx.
type Server struct {
	svc *queuesvc.Service
	srv *http.Server
	lis net.Listener
}

// New constructs an HTTP server over the queues service.
func New(svc *queuesvc.Service) *Server {
	mux := http.NewServeMux()
	s := &Server{svc: svc, srv: &http.Server{Handler: cors(mux)}}
	mux.HandleFunc("/v1/healthz", s.handleHealth)
	mux.HandleFunc("/v1/messages/put", s.handlePutMessage)
	mux.HandleFunc("/v1/messages/get", s.handleGetMessage)
	mux.HandleFunc("/v1/messages/check", s.handleMessageCheck)
	mux.HandleFunc("/v1/jobs/put", s.handlePutJob)
	mux.HandleFunc("/v1/jobs/get", s.handleGetJob)
	mux.HandleFunc("/v1/jobs/check", s.handleJobCheck)
	mux.HandleFunc("/v1/purge", s.handlePurge)
	mux.HandleFunc("/v1/stats", s.handleStats)
	return s
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close closes the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeErr maps service errors onto HTTP codes: InvalidArgument is the
// caller's fault, everything else is ours.
func writeErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if status.Code(err) == codes.InvalidArgument {
		code = http.StatusBadRequest
	}
	http.Error(w, status.Convert(err).Message(), code)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handlePutMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req directordv1.PutMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	resp, err := s.svc.PutMessage(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handlePutJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req directordv1.PutJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	resp, err := s.svc.PutJob(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}

// Get dequeues, so it rides POST even though it reads like a fetch.
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req directordv1.GetMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	resp, err := s.svc.GetMessage(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req directordv1.GetJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	resp, err := s.svc.GetJob(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleMessageCheck(w http.ResponseWriter, r *http.Request) {
	s.handleCheck(w, r, s.svc.MessageCheck)
}

func (s *Server) handleJobCheck(w http.ResponseWriter, r *http.Request) {
	s.handleCheck(w, r, s.svc.JobCheck)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request, check func(context.Context, *directordv1.CheckRequest) (*directordv1.CheckResponse, error)) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req := directordv1.CheckRequest{Target: r.URL.Query().Get("target")}
	resp, err := check(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req directordv1.BasicRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	resp, err := s.svc.PurgeQueues(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req := directordv1.StatsRequest{Filter: r.URL.Query().Get("filter")}
	resp, err := s.svc.QueueStats(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, resp)
}
