package grpcecho

import (
	"context"
	"errors"
	"io"
	"sync"
)

// relayLookahead is how many relayed outcomes may be queued before the
// producer must wait for the consumer to take one. It bounds how far a relay
// can run ahead of the outbound stream.
const relayLookahead = 1

var errConsumerGone = errors.New("handoff consumer is gone")

// handoff is a bounded queue between exactly one producer goroutine and
// exactly one consumer.
//
// The producer calls accept for each item and close after the last one. The
// consumer calls dequeue until it returns an error, and cancel if it stops
// early. Both sides give up when the context is done.
type handoff[T any] struct {
	ctx context.Context

	ch       chan T
	gone     chan struct{}
	doCancel sync.Once
}

func newHandoff[T any](ctx context.Context) *handoff[T] {
	return &handoff[T]{
		ctx:  ctx,
		ch:   make(chan T, relayLookahead),
		gone: make(chan struct{}),
	}
}

// accept queues item, blocking while the queue is full. It fails with
// errConsumerGone after cancel, or with the context error.
func (h *handoff[T]) accept(item T) error {
	// If the consumer already left, don't try to add an item to ch
	select {
	case <-h.gone:
		return errConsumerGone
	default:
	}
	select {
	case h.ch <- item:
		return nil
	case <-h.gone:
		return errConsumerGone
	case <-h.ctx.Done():
		return h.ctx.Err()
	}
}

// close marks the end of the items. Only the producer may call it, once.
func (h *handoff[_]) close() {
	close(h.ch)
}

func (h *handoff[_]) cancel() {
	h.doCancel.Do(func() {
		close(h.gone)
	})
}

// dequeue returns the next item. It returns io.EOF once the producer has
// closed the queue and every item has been taken, errConsumerGone after
// cancel, or the context error.
func (h *handoff[T]) dequeue() (T, error) {
	var zero T
	select {
	case <-h.gone:
		return zero, errConsumerGone
	default:
	}
	// If there's an item in ch, make sure to use it
	// before potentially looking at the context
	select {
	case t, ok := <-h.ch:
		if !ok {
			return zero, io.EOF
		}
		return t, nil
	default:
	}
	select {
	case t, ok := <-h.ch:
		if !ok {
			return zero, io.EOF
		}
		return t, nil
	case <-h.gone:
		return zero, errConsumerGone
	case <-h.ctx.Done():
		return zero, h.ctx.Err()
	}
}
