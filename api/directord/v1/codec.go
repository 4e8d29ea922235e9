package directordv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype under which the directord JSON codec is
// registered. Clients must send grpc.CallContentSubtype(CodecName) so the
// server selects it; NewMessageServiceClient does this for every call.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec frames the api types as JSON payloads inside standard gRPC
// messages. Both sides of the wire are directord, so no cross-codec interop
// is required.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return CodecName }
