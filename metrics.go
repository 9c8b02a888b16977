package grpcecho

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics holds the Prometheus collectors for the echo server.
type Metrics struct {
	calls    *prometheus.CounterVec
	messages *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grpcecho",
				Subsystem: "server",
				Name:      "calls_total",
				Help:      "Total number of finished calls by method and status code.",
			},
			[]string{"method", "code"},
		),
		messages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grpcecho",
				Subsystem: "server",
				Name:      "stream_messages_total",
				Help:      "Total number of stream messages by method and direction.",
			},
			[]string{"method", "direction"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "grpcecho",
				Subsystem: "server",
				Name:      "call_duration_seconds",
				Help:      "Call duration in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method"},
		),
	}
}

// UnaryServerInterceptor returns an interceptor that records unary calls.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.observe(info.FullMethod, start, err)
		return resp, err
	}
}

// StreamServerInterceptor returns an interceptor that records streaming
// calls and the messages they carry.
func (m *Metrics) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, &countingServerStream{
			ServerStream: ss,
			sent:         m.messages.WithLabelValues(info.FullMethod, "sent"),
			received:     m.messages.WithLabelValues(info.FullMethod, "received"),
		})
		m.observe(info.FullMethod, start, err)
		return err
	}
}

func (m *Metrics) observe(method string, start time.Time, err error) {
	m.calls.WithLabelValues(method, status.Code(err).String()).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

type countingServerStream struct {
	grpc.ServerStream
	sent, received prometheus.Counter
}

func (s *countingServerStream) SendMsg(m interface{}) error {
	err := s.ServerStream.SendMsg(m)
	if err == nil {
		s.sent.Inc()
	}
	return err
}

func (s *countingServerStream) RecvMsg(m interface{}) error {
	err := s.ServerStream.RecvMsg(m)
	if err == nil {
		s.received.Inc()
	}
	return err
}
