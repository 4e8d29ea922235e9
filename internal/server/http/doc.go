// Package httpserver exposes the queue operations over a small JSON/HTTP
// API, mirroring the gRPC surface for callers without a gRPC stack.
package httpserver
