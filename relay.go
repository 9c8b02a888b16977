package grpcecho

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/echostream/grpcecho/echopb"
)

// trailerMessage is the output of the extra response a relay sends after the
// client closes its side of the stream.
const trailerMessage = "extra message after sender closed abcdef"

// Inbound is the receiving half of a request stream. Recv returns io.EOF
// when the sender has closed the stream normally.
type Inbound interface {
	Recv() (*echopb.EchoRequest, error)
}

type outcome struct {
	resp *echopb.EchoResponse
	err  error
}

// StartRelay starts a goroutine that reads requests from in, applies
// transform to each one and forwards the results to the returned stream.
//
// The relay never runs more than one response ahead of the consumer of the
// returned stream. After in ends normally, the relay sends one extra
// response and then completes. If reading from in or transforming a request
// fails, that error is the last thing the returned stream yields.
//
// The goroutine exits once it has forwarded its final outcome, when the
// returned stream is closed, or when ctx is done.
func StartRelay(ctx context.Context, in Inbound, transform Transform, logger zerolog.Logger) *ResponseStream {
	out := newHandoff[outcome](ctx)
	r := &relay{
		in:        in,
		transform: transform,
		out:       out,
		logger:    logger,
	}
	go r.run()
	return &ResponseStream{out: out}
}

type relay struct {
	in        Inbound
	transform Transform
	out       *handoff[outcome]
	logger    zerolog.Logger
}

func (r *relay) run() {
	defer r.out.close()
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Msg("relay panicked")
			r.finish(outcome{err: status.Errorf(codes.Internal, "panic while relaying stream: %v", p)})
		}
	}()

	var relayed int
	for {
		req, err := r.in.Recv()
		if errors.Is(err, io.EOF) {
			r.logger.Debug().Int("relayed", relayed).Msg("sender closed stream")
			r.finish(outcome{resp: &echopb.EchoResponse{Output: trailerMessage}})
			return
		}
		if err != nil {
			r.finish(outcome{err: err})
			return
		}

		resp, err := r.transform(req)
		if err != nil {
			r.finish(outcome{err: err})
			return
		}
		if err := r.out.accept(outcome{resp: resp}); err != nil {
			r.logger.Warn().Err(err).Int("relayed", relayed).Msg("could not forward response; stopping relay")
			return
		}
		relayed++
	}
}

// finish forwards the final outcome of the relay.
func (r *relay) finish(o outcome) {
	if o.err != nil {
		r.logger.Debug().Err(o.err).Msg("relay ending with error")
	}
	if err := r.out.accept(o); err != nil {
		r.logger.Warn().Err(err).Msg("could not forward final outcome")
	}
}

// ResponseStream is the outbound side of a relay. It is not safe for
// concurrent use.
type ResponseStream struct {
	out *handoff[outcome]
	err error
}

// Recv returns the next response. It returns io.EOF after the final
// response of a relay that completed normally. If the relay failed, Recv
// returns that error, and returns it again on every later call.
func (s *ResponseStream) Recv() (*echopb.EchoResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	o, err := s.out.dequeue()
	switch {
	case err == nil && o.err == nil:
		return o.resp, nil
	case err == nil:
		s.err = o.err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.err = status.FromContextError(err).Err()
	default:
		s.err = err
	}
	return nil, s.err
}

// Close tells the relay that no more responses will be read. A relay blocked
// forwarding a response stops.
func (s *ResponseStream) Close() {
	s.out.cancel()
}
