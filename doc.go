// Package grpcecho provides a gRPC echo service and a client that generates
// traffic for it.
//
// The service has a unary method and a bidirectional streaming method. The
// streaming method is served by a relay that reads requests on its own
// goroutine and hands responses to the sending side through a queue that
// holds a single item, so it never gets more than one response ahead of the
// client. When the client closes its side of the stream, the relay sends one
// extra response before completing. If the relay fails, the failure is the
// final status of the call.
//
// The client side sends a fixed number of requests spaced by a delay, using
// a Generator. Generator is a plain state machine polled with the current
// time, so callers are free to drive it however they like; Generator.Next
// drives it with timers.
//
// Errors may carry details: typed protobuf messages packed into a
// google.rpc.Status. EncodeStatus and DecodeDetails convert between details
// and the binary form gRPC sends in the grpc-status-details-bin trailer, and
// a DetailRegistry decodes details by type URL.
//
// A JSON codec is registered under the content subtype "json" so that
// clients can pick a human-readable wire format per call (see WithCodec).
package grpcecho

//go:generate bash -c "cd echopb && go generate"
