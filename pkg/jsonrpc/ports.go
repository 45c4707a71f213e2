package jsonrpc

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Transport delivers one request envelope and returns the matching response envelope.
//
//counterfeiter:generate -o fake -fake-name Transport . Transport
type Transport interface {
	Request(ctx context.Context, req *Request) (*Response, error)
	Close() error
}
