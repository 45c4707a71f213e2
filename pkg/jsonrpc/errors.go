package jsonrpc

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrTimeout           = errors.New("request timed out")
	ErrConnectionClosed  = errors.New("connection closed")
	ErrMalformedResponse = errors.New("malformed response")
	ErrHTTPStatus        = errors.New("unexpected http status")
)

// RPCError is the error object a node returns in place of a result.
type RPCError struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("rpc error %d: %s: %s", e.Code, e.Message, string(e.Data))
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
