package grpcecho

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/fullstorydev/grpchan"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/echostream/grpcecho/echopb"
)

var errShuttingDown = status.Error(codes.Unavailable, "server is shutting down")

// EchoServiceHandler provides an implementation for echopb.EchoServer.
//
// Unary calls apply the handler's Transform to the request. Bidirectional
// calls are served by a relay (see StartRelay): every request is
// transformed and sent back in order, and once the client closes its side
// one extra response follows.
//
// See NewEchoServiceHandler.
type EchoServiceHandler struct {
	transform Transform
	logger    zerolog.Logger
	metrics   *Metrics

	stopping atomic.Bool
}

// NewEchoServiceHandler creates a new EchoServiceHandler. Without options it
// echoes requests and logs nothing.
func NewEchoServiceHandler(opts ...ServerOption) *EchoServiceHandler {
	o := serverOpts{
		transform: EchoTransform,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &EchoServiceHandler{
		transform: o.transform,
		logger:    o.logger.With().Str("component", "grpcecho.EchoServiceHandler").Logger(),
		metrics:   o.metrics,
	}
}

// Service returns the actual echo service implementation to register with a
// [grpc.ServiceRegistrar].
func (s *EchoServiceHandler) Service() echopb.EchoServer {
	return &echoServiceHandler{h: s}
}

// RegisterWith registers the echo service with reg, which may be a
// *grpc.Server, a grpchan.HandlerMap or an in-process channel. If the
// handler was created with metrics, they are recorded for every call.
func (s *EchoServiceHandler) RegisterWith(reg grpc.ServiceRegistrar) {
	if s.metrics != nil {
		reg = grpchan.WithInterceptor(reg, s.metrics.UnaryServerInterceptor(), s.metrics.StreamServerInterceptor())
	}
	echopb.RegisterEchoServer(reg, s.Service())
}

// InitiateShutdown makes the handler refuse new calls with an "Unavailable"
// error code and returns immediately. Calls already in progress carry on.
// This complements the GracefulStop method of a *grpc.Server.
func (s *EchoServiceHandler) InitiateShutdown() {
	s.stopping.Store(true)
}

func (s *EchoServiceHandler) echo(ctx context.Context, req *echopb.EchoRequest) (*echopb.EchoResponse, error) {
	if s.stopping.Load() {
		return nil, errShuttingDown
	}
	s.logger.Debug().Str("input", req.GetInput()).Msg("echo request")
	resp, err := s.transform(req)
	if err != nil {
		s.logger.Debug().Err(err).Msg("echo failed")
		return nil, err
	}
	return resp, nil
}

func (s *EchoServiceHandler) echoBiDir(stream echopb.Echo_EchoBiDirServer) error {
	if s.stopping.Load() {
		return errShuttingDown
	}
	logger := s.logger.With().Str("method", "EchoBiDir").Logger()
	logger.Debug().Msg("stream started")

	out := StartRelay(stream.Context(), stream, s.transform, logger)
	defer out.Close()

	var sent int
	for {
		resp, err := out.Recv()
		if errors.Is(err, io.EOF) {
			logger.Debug().Int("sent", sent).Msg("stream complete")
			return nil
		}
		if err != nil {
			logger.Debug().Err(err).Int("sent", sent).Msg("stream failed")
			return err
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
		sent++
	}
}

type echoServiceHandler struct {
	echopb.UnimplementedEchoServer
	h *EchoServiceHandler
}

func (s *echoServiceHandler) Echo(ctx context.Context, req *echopb.EchoRequest) (*echopb.EchoResponse, error) {
	return s.h.echo(ctx, req)
}

func (s *echoServiceHandler) EchoBiDir(stream echopb.Echo_EchoBiDirServer) error {
	return s.h.echoBiDir(stream)
}
