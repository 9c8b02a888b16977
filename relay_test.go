package grpcecho

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/echostream/grpcecho/echopb"
)

// sliceInbound yields inputs in order, then err, or io.EOF if err is nil.
type sliceInbound struct {
	inputs []string
	err    error
	recvs  atomic.Int32
}

func (s *sliceInbound) Recv() (*echopb.EchoRequest, error) {
	n := int(s.recvs.Add(1)) - 1
	if n < len(s.inputs) {
		return &echopb.EchoRequest{Input: s.inputs[n]}, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, io.EOF
}

// drain reads the stream until it fails, returning the outputs and the
// error that ended it.
func drain(t *testing.T, rs *ResponseStream) ([]string, error) {
	t.Helper()
	var outputs []string
	for {
		resp, err := rs.Recv()
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, resp.GetOutput())
	}
}

func TestRelayEchoesAndAddsTrailer(t *testing.T) {
	rs := StartRelay(context.Background(), &sliceInbound{inputs: []string{"a", "b"}}, EchoTransform, zerolog.Nop())
	outputs, err := drain(t, rs)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"echoed: a", "echoed: b", "extra message after sender closed abcdef"}, outputs)

	// the end is sticky
	_, err = rs.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRelayEmptyInbound(t *testing.T) {
	rs := StartRelay(context.Background(), &sliceInbound{}, EchoTransform, zerolog.Nop())
	outputs, err := drain(t, rs)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{trailerMessage}, outputs)
}

func TestRelayKeepsOrder(t *testing.T) {
	inputs := make([]string, 100)
	want := make([]string, 0, len(inputs)+1)
	for i := range inputs {
		inputs[i] = string(rune('A' + i%26))
		want = append(want, echoPrefix+inputs[i])
	}
	want = append(want, trailerMessage)

	rs := StartRelay(context.Background(), &sliceInbound{inputs: inputs}, EchoTransform, zerolog.Nop())
	outputs, err := drain(t, rs)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, want, outputs)
}

func TestRelayInboundError(t *testing.T) {
	inboundErr := status.Error(codes.Unavailable, "connection lost")
	in := &sliceInbound{inputs: []string{"a", "b", "c"}, err: inboundErr}
	rs := StartRelay(context.Background(), in, EchoTransform, zerolog.Nop())

	outputs, err := drain(t, rs)
	assert.Equal(t, []string{"echoed: a", "echoed: b", "echoed: c"}, outputs)
	assert.Equal(t, codes.Unavailable, status.Code(err))

	// the error is sticky and nothing follows it
	_, again := rs.Recv()
	assert.Equal(t, err, again)
}

func TestRelayTransformError(t *testing.T) {
	in := &sliceInbound{inputs: []string{"a", "b"}}
	rs := StartRelay(context.Background(), in, ErrorTransform, zerolog.Nop())

	outputs, err := drain(t, rs)
	assert.Empty(t, outputs)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "error with 2 details", st.Message())
	assert.Len(t, DetailsFromError(err), 2)
	// the relay stops at the first failure
	assert.EqualValues(t, 1, in.recvs.Load())
}

func TestRelayTransformPanics(t *testing.T) {
	var calls int
	transform := func(req *echopb.EchoRequest) (*echopb.EchoResponse, error) {
		calls++
		if calls == 2 {
			panic("boom")
		}
		return EchoTransform(req)
	}
	rs := StartRelay(context.Background(), &sliceInbound{inputs: []string{"a", "b", "c"}}, transform, zerolog.Nop())

	outputs, err := drain(t, rs)
	assert.Equal(t, []string{"echoed: a"}, outputs)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, err.Error(), "boom")
}

// gatedInbound yields a request every time one is put on its channel and
// counts how many were taken.
type gatedInbound struct {
	ch    chan *echopb.EchoRequest
	taken atomic.Int32
}

func (g *gatedInbound) Recv() (*echopb.EchoRequest, error) {
	req, ok := <-g.ch
	if !ok {
		return nil, io.EOF
	}
	g.taken.Add(1)
	return req, nil
}

func TestRelayBackpressure(t *testing.T) {
	in := &gatedInbound{ch: make(chan *echopb.EchoRequest, 10)}
	for i := 0; i < 10; i++ {
		in.ch <- &echopb.EchoRequest{Input: "x"}
	}
	close(in.ch)

	rs := StartRelay(context.Background(), in, EchoTransform, zerolog.Nop())
	defer rs.Close()

	// One response waits in the queue and the relay holds the next one,
	// unable to forward it. It reads nothing else.
	require.Eventually(t, func() bool {
		return in.taken.Load() == relayLookahead+1
	}, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, relayLookahead+1, in.taken.Load())

	_, err := rs.Recv()
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return in.taken.Load() == relayLookahead+2
	}, time.Second, time.Millisecond)

	outputs, err := drain(t, rs)
	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, outputs, 10)
}

func TestRelayConsumerGone(t *testing.T) {
	checkForGoroutineLeak(t, func() {
		in := &gatedInbound{ch: make(chan *echopb.EchoRequest, 5)}
		for i := 0; i < 5; i++ {
			in.ch <- &echopb.EchoRequest{Input: "x"}
		}
		rs := StartRelay(context.Background(), in, EchoTransform, zerolog.Nop())
		_, err := rs.Recv()
		require.NoError(t, err)

		rs.Close()
		_, err = rs.Recv()
		assert.ErrorIs(t, err, errConsumerGone)
		// the relay gives up instead of reading the rest of the stream
		time.Sleep(50 * time.Millisecond)
		assert.Less(t, in.taken.Load(), int32(5))
	})
}

func TestRelayContextCancelled(t *testing.T) {
	checkForGoroutineLeak(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		in := &blockingInbound{ctx: ctx}
		rs := StartRelay(ctx, in, EchoTransform, zerolog.Nop())

		time.AfterFunc(20*time.Millisecond, cancel)
		_, err := rs.Recv()
		assert.Equal(t, codes.Canceled, status.Code(err))
	})
}

// blockingInbound never yields a request; Recv fails when ctx is done, like
// a gRPC stream whose call was cancelled.
type blockingInbound struct {
	ctx context.Context
}

func (b *blockingInbound) Recv() (*echopb.EchoRequest, error) {
	<-b.ctx.Done()
	return nil, status.FromContextError(b.ctx.Err()).Err()
}

func TestRelayPlainInboundError(t *testing.T) {
	boom := errors.New("boom")
	rs := StartRelay(context.Background(), &sliceInbound{err: boom}, EchoTransform, zerolog.Nop())
	outputs, err := drain(t, rs)
	assert.Empty(t, outputs)
	assert.ErrorIs(t, err, boom)
}
