package broker

// Kind selects one of the two independent queue spaces multiplexed per target.
type Kind int

// Queue kinds
const (
	KindMessage Kind = iota
	KindJob
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindJob:
		return "job"
	default:
		return "unknown"
	}
}

// Envelope is the unit of data stored in and delivered by a queue. All fields
// are caller-supplied strings and may be empty; MsgID is a correlation id and
// is not required to be unique. An Envelope is never mutated once enqueued.
type Envelope struct {
	Identity string
	MsgID    string
	Control  string
	Command  string
	Data     string
	Info     string
	Stdout   string
	Stderr   string
}
