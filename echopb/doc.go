// Package echopb contains generated code corresponding to the Protocol
// Buffer definition of the echo service and its error detail payloads.
package echopb

//go:generate protoc --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative -I.. echopb/echo.proto
