// Package broker implements the queueing and delivery engine behind the
// directord wire contract.
//
// # Overview
//
// Two independently-lifecycled queue spaces (messages and jobs) are
// multiplexed per logical target (a host or worker identity). Producers Put
// addressed Envelopes, consumers Get them back in strict FIFO order, Check
// answers a non-blocking "anything waiting?" probe, and Purge drops all
// state for both kinds at once.
//
// # Core Concepts
//
//   - Envelope: the immutable payload record carried by both queue kinds
//   - Queue: per-(kind, target) FIFO buffer with its own lock
//   - Directory: registry of live queues, created lazily on first Put
//   - Broker: facade enforcing the per-operation contracts
//
// # Delivery Semantics
//
//   - At-most-once: each Envelope is returned by exactly one Get
//   - Get is a poll, never a blocking wait; callers poll externally
//   - Absent and empty queues are indistinguishable to Check
//   - Get and Check never create a queue as a side effect
//
// The broker owns no transport concerns; the grpc and http servers adapt
// wire requests onto these calls via the services layer.
package broker
