package broker

import (
	"errors"

	logpkg "github.com/mwhahaha/directord/pkg/log"
)

// ErrEmptyTarget rejects any operation whose target is empty. The directory
// is never touched for such requests.
var ErrEmptyTarget = errors.New("target must not be empty")

// Broker implements the queueing and delivery engine behind the wire
// contract: Get, Put, Check and Purge for the message and job queue spaces.
// Every call is independent; all methods are safe for concurrent use.
//
// Absence of data is not an error. Get and Check on an unknown or empty
// target report "no data" and never create a queue as a side effect.
type Broker struct {
	dir    *Directory
	logger logpkg.Logger
}

// New creates a Broker with default logging.
func New() *Broker {
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
	return NewWithLogger(logger.WithComponent("broker"))
}

// NewWithLogger creates a Broker with a custom logger.
func NewWithLogger(logger logpkg.Logger) *Broker {
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel)).WithComponent("broker")
	}
	return &Broker{dir: NewDirectory(), logger: logger}
}

// Get dequeues the oldest Envelope for (kind, target). The boolean is false
// when the queue is absent or empty; absence never registers a queue.
func (b *Broker) Get(kind Kind, target string) (Envelope, bool, error) {
	if target == "" {
		return Envelope{}, false, ErrEmptyTarget
	}
	q, ok := b.dir.Get(kind, target, false)
	if !ok {
		b.logger.Debug("no queue for target", logpkg.F("kind", kind.String()), logpkg.F("target", target))
		return Envelope{}, false, nil
	}
	env, ok := q.Dequeue()
	if !ok {
		b.logger.Debug("queue empty", logpkg.F("kind", kind.String()), logpkg.F("target", target))
		return Envelope{}, false, nil
	}
	b.logger.Debug("dequeued envelope",
		logpkg.F("kind", kind.String()),
		logpkg.F("target", target),
		logpkg.F("msg_id", env.MsgID))
	return env, true, nil
}

// Put enqueues env for (kind, target), creating the queue on first use.
func (b *Broker) Put(kind Kind, target string, env Envelope) error {
	if target == "" {
		return ErrEmptyTarget
	}
	q, _ := b.dir.Get(kind, target, true)
	q.Enqueue(env)
	b.logger.Debug("enqueued envelope",
		logpkg.F("kind", kind.String()),
		logpkg.F("target", target),
		logpkg.F("msg_id", env.MsgID))
	return nil
}

// Check reports whether (kind, target) has at least one waiting Envelope. An
// absent queue and an empty queue are indistinguishable here.
func (b *Broker) Check(kind Kind, target string) (bool, error) {
	if target == "" {
		return false, ErrEmptyTarget
	}
	q, ok := b.dir.Get(kind, target, false)
	if !ok {
		return false, nil
	}
	return q.NonEmpty(), nil
}

// Purge drops every queue for both kinds, unconditionally. The verbose flag
// is a diagnostic toggle only: it adds a per-queue log line and never narrows
// the purge. Idempotent.
func (b *Broker) Purge(verbose bool) int {
	dropped := b.dir.PurgeAll()
	b.logger.Warn("purged message and job queues", logpkg.F("queues", len(dropped)))
	if verbose {
		for _, st := range dropped {
			b.logger.Info("purged queue",
				logpkg.F("kind", st.Kind.String()),
				logpkg.F("target", st.Target),
				logpkg.F("depth", st.Depth))
		}
	}
	return len(dropped)
}

// Stats returns one entry per live queue across both kinds.
func (b *Broker) Stats() []QueueStat {
	return b.dir.Snapshot()
}
