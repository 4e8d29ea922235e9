package serverrun

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mwhahaha/directord/internal/broker"
	cfgpkg "github.com/mwhahaha/directord/internal/config"
	grpcserver "github.com/mwhahaha/directord/internal/server/grpc"
	httpserver "github.com/mwhahaha/directord/internal/server/http"
	queuesvc "github.com/mwhahaha/directord/internal/services/queues"
	logpkg "github.com/mwhahaha/directord/pkg/log"
)

// Options configures the server run loop.
type Options struct {
	GRPCAddr string
	HTTPAddr string
	Config   cfgpkg.Config
}

// Run starts the broker behind gRPC and HTTP servers and blocks until ctx is
// cancelled or an interrupt arrives.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context: layer a
	// local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.GRPCAddr == "" {
		opts.GRPCAddr = opts.Config.GRPCAddr
	}
	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}

	procLogger, err := logpkg.ApplyConfig(&logpkg.Config{
		Level:  opts.Config.LogLevel,
		Format: opts.Config.LogFormat,
	})
	if err != nil {
		procLogger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel), logpkg.WithFormatter(&logpkg.TextFormatter{}))
		procLogger.Warn("invalid log config, using defaults", logpkg.F("error", err.Error()))
	}

	bkr := broker.NewWithLogger(procLogger.WithComponent("broker"))
	svc := queuesvc.NewWithLogger(bkr, procLogger.WithComponent("queues"))
	gsrv := grpcserver.New(svc)
	hsrv := httpserver.New(svc)

	procLogger.Info("starting directord server",
		logpkg.F("grpc_addr", opts.GRPCAddr),
		logpkg.F("http_addr", opts.HTTPAddr))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gsrv.ListenAndServe(sctx, opts.GRPCAddr); err != nil && sctx.Err() == nil {
			procLogger.Error("grpc server error", logpkg.F("error", err.Error()))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.HTTPAddr); err != nil && sctx.Err() == nil {
			procLogger.Error("http server error", logpkg.F("error", err.Error()))
		}
	}()

	<-sctx.Done()
	gsrv.Close()
	hsrv.Close()
	wg.Wait()
	return nil
}
