// Package directordv1 defines the directord.v1.MessageService wire surface:
// the message types, the JSON codec they travel with, the service binding,
// and the client.
//
// The types mirror proto/directord/v1/msg.proto one-to-one; json tags carry
// the proto field names. CheckRequest.Target sits at proto field number 3 in
// the schema (earlier numbers are retired); the JSON framing is unaffected.
package directordv1

// ServerTarget is the reserved target under which traffic addressed to the
// directord server itself is queued. It is deliberately not a valid hostname
// so no client target can mask the server.
const ServerTarget = "DIRECTORD_SERVER"

// MessageData is the envelope carried by both queue kinds.
type MessageData struct {
	Identity string `json:"identity,omitempty"`
	MsgID    string `json:"msg_id,omitempty"`
	Control  string `json:"control,omitempty"`
	Command  string `json:"command,omitempty"`
	Data     string `json:"data,omitempty"`
	Info     string `json:"info,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
	Stdout   string `json:"stdout,omitempty"`
}

// GetMessageRequest asks for the oldest queued message for Target.
type GetMessageRequest struct {
	Target string `json:"target,omitempty"`
}

// GetJobRequest asks for the oldest queued job for Target.
type GetJobRequest struct {
	Target string `json:"target,omitempty"`
}

// PutMessageRequest queues Data as a message for Target.
type PutMessageRequest struct {
	Target string       `json:"target,omitempty"`
	Data   *MessageData `json:"data,omitempty"`
}

// PutJobRequest queues Data as a job for Target.
type PutJobRequest struct {
	Target string       `json:"target,omitempty"`
	Data   *MessageData `json:"data,omitempty"`
}

// CheckRequest asks whether Target has queued data.
type CheckRequest struct {
	Target string `json:"target,omitempty"`
}

// BasicRequest carries the purge diagnostic toggle. Verbose never narrows
// the purge; it only adds per-queue detail to the server log.
type BasicRequest struct {
	Verbose bool `json:"verbose,omitempty"`
}

// MessageResponse returns a dequeued message. Status is false and Data nil
// when the queue was absent or empty; that is not an error.
type MessageResponse struct {
	UUID   string       `json:"uuid,omitempty"`
	Status bool         `json:"status,omitempty"`
	Target string       `json:"target,omitempty"`
	Data   *MessageData `json:"data,omitempty"`
}

// JobResponse returns a dequeued job with the same soft-miss semantics as
// MessageResponse.
type JobResponse struct {
	UUID   string       `json:"uuid,omitempty"`
	Status bool         `json:"status,omitempty"`
	Target string       `json:"target,omitempty"`
	Data   *MessageData `json:"data,omitempty"`
}

// CheckResponse reports whether Target had data at the time of the check.
type CheckResponse struct {
	Target  string `json:"target,omitempty"`
	HasData bool   `json:"has_data,omitempty"`
}

// Status is the generic operation result.
type Status struct {
	UUID   string `json:"uuid,omitempty"`
	Result bool   `json:"result,omitempty"`
}

// StatsRequest asks for live queue stats. Filter is an optional CEL
// expression over {kind, target, depth}; empty matches everything.
type StatsRequest struct {
	Filter string `json:"filter,omitempty"`
}

// QueueStat describes one live queue.
type QueueStat struct {
	Kind   string `json:"kind,omitempty"`
	Target string `json:"target,omitempty"`
	Depth  int64  `json:"depth,omitempty"`
}

// StatsResponse enumerates live queues, sorted by kind then target.
type StatsResponse struct {
	UUID   string       `json:"uuid,omitempty"`
	Queues []*QueueStat `json:"queues,omitempty"`
}
