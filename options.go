package grpcecho

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// ServerOption is an option for configuring an EchoServiceHandler.
type ServerOption interface {
	apply(*serverOpts)
}

// WithErrorDetails returns an option that, when enabled, makes every call
// fail with an Internal error carrying two details (see ErrorTransform).
// It is meant for checking that clients handle error details.
func WithErrorDetails(enabled bool) ServerOption {
	return serverOptFunc(func(opts *serverOpts) {
		if enabled {
			opts.transform = ErrorTransform
		} else {
			opts.transform = EchoTransform
		}
	})
}

// WithTransform returns an option that replaces the function that turns
// requests into responses.
func WithTransform(transform Transform) ServerOption {
	return serverOptFunc(func(opts *serverOpts) {
		opts.transform = transform
	})
}

// WithServerLogger returns an option that sets the logger of the server and
// of the relays it starts. By default nothing is logged.
func WithServerLogger(logger zerolog.Logger) ServerOption {
	return serverOptFunc(func(opts *serverOpts) {
		opts.logger = logger
	})
}

// WithMetrics returns an option that records call and message metrics for
// the services registered through EchoServiceHandler.RegisterWith.
func WithMetrics(m *Metrics) ServerOption {
	return serverOptFunc(func(opts *serverOpts) {
		opts.metrics = m
	})
}

type serverOpts struct {
	transform Transform
	logger    zerolog.Logger
	metrics   *Metrics
}

type serverOptFunc func(*serverOpts)

func (f serverOptFunc) apply(opts *serverOpts) {
	f(opts)
}

// ClientOption is an option for configuring a Client.
type ClientOption interface {
	applyClient(*clientOpts)
}

// WithCodec returns an option that selects the codec used for every call
// by its content subtype name, such as "proto" or JSONCodecName. The server
// answers with the same codec.
func WithCodec(name string) ClientOption {
	return clientOptFunc(func(opts *clientOpts) {
		opts.codec = name
	})
}

// WithClientLogger returns an option that sets the client's logger. By
// default nothing is logged.
func WithClientLogger(logger zerolog.Logger) ClientOption {
	return clientOptFunc(func(opts *clientOpts) {
		opts.logger = logger
	})
}

// WithDetailRegistry returns an option that sets the registry used to
// decode error details. The default is EchoDetails.
func WithDetailRegistry(r *DetailRegistry) ClientOption {
	return clientOptFunc(func(opts *clientOpts) {
		opts.registry = r
	})
}

// WithCallOptions returns an option that adds call options to every call.
func WithCallOptions(callOpts ...grpc.CallOption) ClientOption {
	return clientOptFunc(func(opts *clientOpts) {
		opts.callOpts = append(opts.callOpts, callOpts...)
	})
}

type clientOpts struct {
	codec    string
	logger   zerolog.Logger
	registry *DetailRegistry
	callOpts []grpc.CallOption
}

type clientOptFunc func(*clientOpts)

func (f clientOptFunc) applyClient(opts *clientOpts) {
	f(opts)
}
