// Package client provides the CLI-side client for a running directord
// server: a thin wrapper over the MessageService gRPC client plus the cobra
// command groups that expose it.
package client
