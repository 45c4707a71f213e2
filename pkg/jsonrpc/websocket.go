package jsonrpc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// TimeoutPolicy decides what a request timeout does to the shared socket.
type TimeoutPolicy int

const (
	// TimeoutClosesConnection treats the socket as broken: it is closed and
	// every other pending request fails with ErrConnectionClosed.
	TimeoutClosesConnection TimeoutPolicy = iota
	// TimeoutIsolated fails only the request that timed out.
	TimeoutIsolated
)

func (p TimeoutPolicy) String() string {
	switch p {
	case TimeoutClosesConnection:
		return "closes-connection"
	case TimeoutIsolated:
		return "isolated"
	default:
		return fmt.Sprintf("TimeoutPolicy(%d)", int(p))
	}
}

type WebSocketOptions struct {
	Timeout       time.Duration
	TimeoutPolicy TimeoutPolicy
	Dialer        *websocket.Dialer
}

// WebSocketTransport multiplexes requests over one lazily opened socket.
// A closed socket is replaced on the next request.
type WebSocketTransport struct {
	logs    *zap.SugaredLogger
	url     string
	timeout time.Duration
	policy  TimeoutPolicy
	dialer  *websocket.Dialer

	mu   sync.Mutex
	sock *socket
}

func NewWebSocketTransport(logger *zap.SugaredLogger, url string, opts WebSocketOptions) *WebSocketTransport {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	return &WebSocketTransport{
		logs:    logger,
		url:     url,
		timeout: opts.Timeout,
		policy:  opts.TimeoutPolicy,
		dialer:  opts.Dialer,
	}
}

func (t *WebSocketTransport) Request(ctx context.Context, req *Request) (*Response, error) {
	sock, err := t.socket(ctx)
	if err != nil {
		return nil, err
	}

	replies, err := sock.register(req.ID)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.Method, err)
	}
	if err := sock.write(req); err != nil {
		sock.close(fmt.Errorf("write %s: %w", req.Method, err))
		return nil, fmt.Errorf("request %s: %w", req.Method, sock.err())
	}

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case resp := <-replies:
		return resp, nil
	case <-sock.done:
		select {
		case resp := <-replies:
			return resp, nil
		default:
		}
		return nil, fmt.Errorf("request %s: %w", req.Method, sock.err())
	case <-timer.C:
		sock.unregister(req.ID)
		if t.policy == TimeoutClosesConnection {
			t.logs.Warnw("request timed out, closing socket", "method", req.Method, "id", req.ID, "timeout", t.timeout)
			sock.close(fmt.Errorf("request %d timed out", req.ID))
		} else {
			t.logs.Warnw("request timed out", "method", req.Method, "id", req.ID, "timeout", t.timeout)
		}
		return nil, fmt.Errorf("%w: %s after %s", ErrTimeout, req.Method, t.timeout)
	case <-ctx.Done():
		sock.unregister(req.ID)
		return nil, fmt.Errorf("request %s: %w", req.Method, ctx.Err())
	}
}

// Close closes the current socket, failing its pending requests.
func (t *WebSocketTransport) Close() error {
	t.mu.Lock()
	sock := t.sock
	t.sock = nil
	t.mu.Unlock()

	if sock != nil {
		sock.close(errors.New("closed by client"))
	}
	return nil
}

// socket returns the open socket, dialing a new one when there is none or
// the last one closed. Concurrent callers wait for the same dial.
func (t *WebSocketTransport) socket(ctx context.Context) (*socket, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sock != nil && !t.sock.closed() {
		return t.sock, nil
	}

	conn, _, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", t.url, err)
	}
	t.logs.Infow("socket opened", "url", t.url)

	t.sock = newSocket(t.logs, conn)
	go t.sock.readLoop()
	return t.sock, nil
}

type socket struct {
	logs *zap.SugaredLogger
	conn *websocket.Conn

	writeMu sync.Mutex

	mu       sync.Mutex
	pending  map[uint64]chan *Response
	closeErr error
	done     chan struct{}
}

func newSocket(logger *zap.SugaredLogger, conn *websocket.Conn) *socket {
	return &socket{
		logs:    logger,
		conn:    conn,
		pending: make(map[uint64]chan *Response),
		done:    make(chan struct{}),
	}
}

func (s *socket) register(id uint64) (<-chan *Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeErr != nil {
		return nil, s.closeErr
	}
	replies := make(chan *Response, 1)
	s.pending[id] = replies
	return replies, nil
}

func (s *socket) unregister(id uint64) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

func (s *socket) write(req *Request) error {
	b, err := json.Marshal(req)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, b)
}

func (s *socket) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *socket) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeErr
}

// close rejects every pending request and clears the table. Only the first call has an effect.
func (s *socket) close(cause error) {
	s.mu.Lock()
	if s.closeErr != nil {
		s.mu.Unlock()
		return
	}
	s.closeErr = fmt.Errorf("%w: %w", ErrConnectionClosed, cause)
	rejected := len(s.pending)
	s.pending = make(map[uint64]chan *Response)
	close(s.done)
	s.mu.Unlock()

	_ = s.conn.Close()
	s.logs.Infow("socket closed", "reason", cause.Error(), "rejected", rejected)
}

func (s *socket) readLoop() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.close(fmt.Errorf("read: %w", err))
			return
		}

		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			s.logs.Debugw("dropping malformed message", "error", err)
			continue
		}

		s.mu.Lock()
		replies, ok := s.pending[resp.ID]
		delete(s.pending, resp.ID)
		s.mu.Unlock()

		if !ok {
			s.logs.Debugw("dropping unmatched response", "id", resp.ID)
			continue
		}
		replies <- &resp
	}
}
