package grpcecho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"

	"github.com/echostream/grpcecho/echopb"
)

func TestJSONCodecRegistered(t *testing.T) {
	assert.True(t, codecAvailable(JSONCodecName))
	assert.True(t, codecAvailable("proto"))
	assert.False(t, codecAvailable("cbor"))
}

func TestJSONCodecMarshal(t *testing.T) {
	codec := encoding.GetCodec(JSONCodecName)
	require.NotNil(t, codec)

	b, err := codec.Marshal(&echopb.EchoRequest{Input: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":"hi"}`, string(b))

	var resp echopb.EchoResponse
	require.NoError(t, codec.Unmarshal([]byte(`{"output":"echoed: hi","unknown":1}`), &resp))
	assert.True(t, proto.Equal(&echopb.EchoResponse{Output: "echoed: hi"}, &resp))

	_, err = codec.Marshal("not a message")
	assert.Error(t, err)
	assert.Error(t, codec.Unmarshal([]byte(`{}`), new(string)))
	assert.Error(t, codec.Unmarshal([]byte(`{"output":`), &resp))
}
