package jsonrpc

import (
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

const version = "2.0"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var lastID atomic.Uint64

type Request struct {
	ID      uint64 `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// NewRequest builds an envelope with a process-wide unique id.
func NewRequest(method string, params ...any) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		ID:      lastID.Add(1),
		JSONRPC: version,
		Method:  method,
		Params:  params,
	}
}

type Response struct {
	ID      uint64              `json:"id"`
	JSONRPC string              `json:"jsonrpc"`
	Result  jsoniter.RawMessage `json:"result,omitempty"`
	Error   *RPCError           `json:"error,omitempty"`
}
