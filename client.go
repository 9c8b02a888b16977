package grpcecho

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/echostream/grpcecho/echopb"
)

// Client issues calls to an echo service.
//
// See NewClient.
type Client struct {
	stub     echopb.EchoClient
	callOpts []grpc.CallOption
	registry *DetailRegistry
	logger   zerolog.Logger
}

// NewClient creates a client that sends calls over cc, which may be a
// *grpc.ClientConn or any other channel, such as an in-process one.
//
// It panics if WithCodec names a codec that is not registered.
func NewClient(cc grpc.ClientConnInterface, opts ...ClientOption) *Client {
	o := clientOpts{
		logger:   zerolog.Nop(),
		registry: EchoDetails,
	}
	for _, opt := range opts {
		opt.applyClient(&o)
	}
	callOpts := o.callOpts
	if o.codec != "" {
		if !codecAvailable(o.codec) {
			panic(fmt.Sprintf("grpcecho: no codec registered for content subtype %q", o.codec))
		}
		callOpts = append(callOpts, grpc.CallContentSubtype(o.codec))
	}
	return &Client{
		stub:     echopb.NewEchoClient(cc),
		callOpts: callOpts,
		registry: o.registry,
		logger:   o.logger.With().Str("component", "grpcecho.Client").Logger(),
	}
}

// CallError is the error returned when a call ends with a non-OK status.
// Details whose type the client's DetailRegistry knows have Message set.
// Details that could not be parsed at all are reported as no details.
type CallError struct {
	Code    codes.Code
	Message string
	Details []Detail

	st *status.Status
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call failed: code = %s desc = %s details = %d", e.Code, e.Message, len(e.Details))
}

// GRPCStatus lets status.FromError and status.Code see through a CallError.
func (e *CallError) GRPCStatus() *status.Status {
	return e.st
}

func (c *Client) callError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	return &CallError{
		Code:    st.Code(),
		Message: st.Message(),
		Details: c.registry.Annotate(DetailsFromError(err)),
		st:      st,
	}
}

// Echo sends input in a unary call and returns the output.
func (c *Client) Echo(ctx context.Context, input string) (string, error) {
	resp, err := c.stub.Echo(ctx, &echopb.EchoRequest{Input: input}, c.callOpts...)
	if err != nil {
		return "", c.callError(err)
	}
	c.logger.Debug().Str("output", resp.GetOutput()).Msg("received response")
	return resp.GetOutput(), nil
}

// StreamResult describes a finished bidirectional call.
type StreamResult struct {
	// Sent is the number of requests sent.
	Sent int
	// Responses holds the output of every response received, in order.
	Responses []string
}

// StreamEcho runs one bidirectional call. It sends the requests produced by
// gen, pacing them as gen dictates, then closes its side of the stream while
// receiving responses concurrently.
//
// A nil error means the stream ended normally. If the server ended the call
// with an error, it is returned as a *CallError, along with what was sent
// and received until then.
func (c *Client) StreamEcho(ctx context.Context, gen *Generator) (StreamResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.stub.EchoBiDir(ctx, c.callOpts...)
	if err != nil {
		return StreamResult{}, c.callError(err)
	}

	var result StreamResult
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		for {
			req, ok, err := gen.Next(grpCtx)
			if err != nil {
				return err
			}
			if !ok {
				c.logger.Debug().Int("sent", result.Sent).Msg("closing send side")
				return stream.CloseSend()
			}
			c.logger.Debug().Str("input", req.GetInput()).Msg("sending request")
			if err := stream.Send(req); err != nil {
				if errors.Is(err, io.EOF) {
					// the server ended the call; Recv reports why
					return nil
				}
				return errors.Wrap(err, "failed to send request")
			}
			result.Sent++
		}
	})
	grp.Go(func() error {
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return c.callError(err)
			}
			c.logger.Debug().Str("output", resp.GetOutput()).Msg("received response")
			result.Responses = append(result.Responses, resp.GetOutput())
		}
	})
	err = grp.Wait()
	c.logger.Debug().Int("received", len(result.Responses)).Err(err).Msg("stream complete")
	return result, err
}
