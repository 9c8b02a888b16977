package grpcecho

import (
	"sync"

	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/echostream/grpcecho/echopb"
)

// typeURLPrefix is the prefix protobuf runtimes put in front of a message's
// full name to form the type URL of a google.protobuf.Any.
const typeURLPrefix = "type.googleapis.com/"

// TypeURL returns the type URL that identifies m's type inside error details,
// for example "type.googleapis.com/echopb.Example1".
func TypeURL(m proto.Message) string {
	return typeURLPrefix + string(m.ProtoReflect().Descriptor().FullName())
}

// Detail is one typed payload attached to an error.
type Detail struct {
	TypeURL string
	Value   []byte
	// Message is the decoded payload. It is nil unless a DetailRegistry
	// recognized TypeURL and could decode Value.
	Message proto.Message
}

// EncodeStatus serializes a google.rpc.Status with the given code, message
// and details, in order. The result is the value gRPC sends in the
// grpc-status-details-bin trailer.
func EncodeStatus(code codes.Code, msg string, details ...proto.Message) ([]byte, error) {
	st, err := statusProto(code, msg, details)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(st)
}

// DecodeDetails parses a serialized google.rpc.Status and returns its details
// in order. Malformed input yields no details rather than an error.
func DecodeDetails(blob []byte) []Detail {
	var st spb.Status
	if err := proto.Unmarshal(blob, &st); err != nil {
		return nil
	}
	return detailsOf(st.GetDetails())
}

// DetailedError returns a gRPC status error with the given details attached.
func DetailedError(code codes.Code, msg string, details ...proto.Message) error {
	st, err := statusProto(code, msg, details)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to attach error details: %v", err)
	}
	return status.ErrorProto(st)
}

// DetailsFromError returns the details carried by a gRPC status error. Errors
// without a status have no details.
func DetailsFromError(err error) []Detail {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return nil
	}
	blob, err := proto.Marshal(st.Proto())
	if err != nil {
		return nil
	}
	return DecodeDetails(blob)
}

func statusProto(code codes.Code, msg string, details []proto.Message) (*spb.Status, error) {
	st := &spb.Status{
		Code:    int32(code),
		Message: msg,
	}
	for _, d := range details {
		b, err := proto.MarshalOptions{Deterministic: true}.Marshal(d)
		if err != nil {
			return nil, err
		}
		st.Details = append(st.Details, &anypb.Any{TypeUrl: TypeURL(d), Value: b})
	}
	return st, nil
}

func detailsOf(anys []*anypb.Any) []Detail {
	if len(anys) == 0 {
		return nil
	}
	details := make([]Detail, len(anys))
	for i, a := range anys {
		details[i] = Detail{TypeURL: a.GetTypeUrl(), Value: a.GetValue()}
	}
	return details
}

// DetailRegistry maps type URLs to the message types used to decode details.
// It is safe for concurrent use.
type DetailRegistry struct {
	mu    sync.RWMutex
	types map[string]proto.Message
}

// NewDetailRegistry returns a registry that knows the types of the given
// messages.
func NewDetailRegistry(prototypes ...proto.Message) *DetailRegistry {
	r := &DetailRegistry{types: map[string]proto.Message{}}
	for _, m := range prototypes {
		r.Register(m)
	}
	return r
}

// EchoDetails knows the detail types sent by the echo service.
var EchoDetails = NewDetailRegistry(&echopb.Example1{}, &echopb.Example2{})

// Register adds m's type to the registry.
func (r *DetailRegistry) Register(m proto.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[TypeURL(m)] = m
}

// Lookup decodes d if its type URL is known.
func (r *DetailRegistry) Lookup(d Detail) (proto.Message, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	m, ok := r.types[d.TypeURL]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	msg := m.ProtoReflect().New().Interface()
	if err := proto.Unmarshal(d.Value, msg); err != nil {
		return nil, false
	}
	return msg, true
}

// Annotate returns a copy of details with Message set on every detail the
// registry can decode. Unknown details are kept with a nil Message.
func (r *DetailRegistry) Annotate(details []Detail) []Detail {
	if len(details) == 0 {
		return nil
	}
	out := make([]Detail, len(details))
	for i, d := range details {
		out[i] = d
		if msg, ok := r.Lookup(d); ok {
			out[i].Message = msg
		}
	}
	return out
}

// Resolve decodes the details whose type is known, keeping their order.
// Unknown or undecodable details are skipped.
func (r *DetailRegistry) Resolve(details []Detail) []proto.Message {
	var msgs []proto.Message
	for _, d := range details {
		if msg, ok := r.Lookup(d); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
