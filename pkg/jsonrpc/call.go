package jsonrpc

import (
	"context"
	"fmt"
)

// Call sends method with params over t and decodes the result into result.
// A nil result discards it. A null result leaves result untouched.
func Call(ctx context.Context, t Transport, result any, method string, params ...any) error {
	req := NewRequest(method, params...)
	resp, err := t.Request(ctx, req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	if resp.ID != req.ID {
		return fmt.Errorf("call %s: %w: response id %d for request %d", method, ErrMalformedResponse, resp.ID, req.ID)
	}
	if resp.Error != nil {
		return fmt.Errorf("call %s: %w", method, resp.Error)
	}
	if result == nil || len(resp.Result) == 0 || string(resp.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("call %s: %w: %w", method, ErrMalformedResponse, err)
	}
	return nil
}
