package grpcecho

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffHoldsOneItem(t *testing.T) {
	h := newHandoff[int](context.Background())
	require.NoError(t, h.accept(1))

	accepted := make(chan error, 1)
	go func() {
		accepted <- h.accept(2)
	}()
	select {
	case <-accepted:
		t.Fatal("second accept should wait until the first item is taken")
	case <-time.After(50 * time.Millisecond):
	}

	v, err := h.dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, <-accepted)

	h.close()
	v, err = h.dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, err = h.dequeue()
	assert.ErrorIs(t, err, io.EOF)
	_, err = h.dequeue()
	assert.ErrorIs(t, err, io.EOF)
}

func TestHandoffCancel(t *testing.T) {
	h := newHandoff[string](context.Background())
	require.NoError(t, h.accept("a"))

	accepted := make(chan error, 1)
	go func() {
		accepted <- h.accept("b")
	}()
	h.cancel()
	h.cancel()
	assert.ErrorIs(t, <-accepted, errConsumerGone)
	assert.ErrorIs(t, h.accept("c"), errConsumerGone)
	_, err := h.dequeue()
	assert.ErrorIs(t, err, errConsumerGone)
}

func TestHandoffContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := newHandoff[int](ctx)
	require.NoError(t, h.accept(1))
	cancel()
	assert.ErrorIs(t, h.accept(2), context.Canceled)

	// a queued item is still delivered
	v, err := h.dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = h.dequeue()
	assert.ErrorIs(t, err, context.Canceled)
}
