package grpcecho

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// JSONCodecName is the content subtype of the JSON codec. Calls made with
// grpc.CallContentSubtype(JSONCodecName) carry messages as protojson text.
const JSONCodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{
		marshal:   protojson.MarshalOptions{},
		unmarshal: protojson.UnmarshalOptions{DiscardUnknown: true},
	})
}

// jsonCodec is a gRPC codec that encodes protobuf messages as JSON.
type jsonCodec struct {
	marshal   protojson.MarshalOptions
	unmarshal protojson.UnmarshalOptions
}

var _ encoding.Codec = jsonCodec{}

func (jsonCodec) Name() string {
	return JSONCodecName
}

func (c jsonCodec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("json codec cannot marshal %T: not a proto.Message", v)
	}
	return c.marshal.Marshal(m)
}

func (c jsonCodec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("json codec cannot unmarshal into %T: not a proto.Message", v)
	}
	return c.unmarshal.Unmarshal(data, m)
}

// codecAvailable reports whether a codec is registered for the content
// subtype name. The binary protobuf codec is registered as "proto".
func codecAvailable(name string) bool {
	return encoding.GetCodec(name) != nil
}
