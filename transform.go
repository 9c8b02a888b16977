package grpcecho

import (
	"google.golang.org/grpc/codes"

	"github.com/echostream/grpcecho/echopb"
)

const echoPrefix = "echoed: "

// Transform turns one request into its response. A non-nil error ends the
// call it belongs to; it should be a gRPC status error.
type Transform func(*echopb.EchoRequest) (*echopb.EchoResponse, error)

// EchoTransform is the default Transform. It returns the input prefixed with
// "echoed: ".
func EchoTransform(req *echopb.EchoRequest) (*echopb.EchoResponse, error) {
	return &echopb.EchoResponse{Output: echoPrefix + req.GetInput()}, nil
}

// ErrorTransform fails every request with an Internal error carrying two
// details, an echopb.Example1 followed by an echopb.Example2. It is used to
// check that clients can read error details.
func ErrorTransform(*echopb.EchoRequest) (*echopb.EchoResponse, error) {
	return nil, DetailedError(codes.Internal, "error with 2 details",
		&echopb.Example1{IntValue: 99},
		&echopb.Example2{FloatValue: 3.14},
	)
}
