package jsonrpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ccc/pkg/jsonrpc"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type wsServer struct {
	*httptest.Server
	received    chan string
	release     chan struct{}
	connections atomic.Int32
}

func newWSServer() *wsServer {
	s := &wsServer{
		received: make(chan string, 16),
		release:  make(chan struct{}),
	}
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		s.connections.Add(1)

		var writeMu sync.Mutex
		reply := func(id uint64, result any) {
			writeMu.Lock()
			defer writeMu.Unlock()
			_ = conn.WriteJSON(map[string]any{"jsonrpc": "2.0", "id": id, "result": result})
		}

		for {
			var req struct {
				ID     uint64 `json:"id"`
				Method string `json:"method"`
			}
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := json.Unmarshal(data, &req); err != nil {
				return
			}
			s.received <- req.Method

			switch req.Method {
			case "echo":
				reply(req.ID, req.Method)
			case "unmatched":
				reply(req.ID+1_000_000, "stray")
				reply(req.ID, req.Method)
			case "held":
				go func(id uint64) {
					<-s.release
					reply(id, "released")
				}(req.ID)
			case "hangup":
				return
			}
		}
	}))
	return s
}

func (s *wsServer) url() string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

var _ = Describe("WebSocketTransport", func() {
	var (
		server    *wsServer
		transport *jsonrpc.WebSocketTransport
		opts      jsonrpc.WebSocketOptions
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = newWSServer()
		opts = jsonrpc.WebSocketOptions{Timeout: 300 * time.Millisecond}
	})

	JustBeforeEach(func() {
		transport = jsonrpc.NewWebSocketTransport(zap.NewNop().Sugar(), server.url(), opts)
	})

	AfterEach(func() {
		_ = transport.Close()
		server.Close()
	})

	request := func(method string) <-chan error {
		errs := make(chan error, 1)
		go func() {
			_, err := transport.Request(ctx, jsonrpc.NewRequest(method))
			errs <- err
		}()
		return errs
	}

	It("reuses one socket across requests", func() {
		var result string
		Expect(jsonrpc.Call(ctx, transport, &result, "echo")).To(Succeed())
		Expect(result).To(Equal("echo"))
		Expect(jsonrpc.Call(ctx, transport, &result, "echo")).To(Succeed())
		Expect(server.connections.Load()).To(Equal(int32(1)))
	})

	It("drops responses with unknown ids", func() {
		var result string
		Expect(jsonrpc.Call(ctx, transport, &result, "unmatched")).To(Succeed())
		Expect(result).To(Equal("unmatched"))
	})

	It("rejects pending requests when the server hangs up and reconnects afterwards", func() {
		held := request("held")
		Eventually(server.received).Should(Receive(Equal("held")))

		hangup := request("hangup")
		Eventually(held).Should(Receive(MatchError(jsonrpc.ErrConnectionClosed)))
		Eventually(hangup).Should(Receive(MatchError(jsonrpc.ErrConnectionClosed)))

		Expect(jsonrpc.Call(ctx, transport, nil, "echo")).To(Succeed())
		Expect(server.connections.Load()).To(Equal(int32(2)))
	})

	When("a request times out", func() {
		var slow, held <-chan error

		JustBeforeEach(func() {
			slow = request("slow")
			Eventually(server.received).Should(Receive(Equal("slow")))
			time.Sleep(100 * time.Millisecond)
			held = request("held")
			Eventually(server.received).Should(Receive(Equal("held")))
		})

		It("closes the shared socket and fails every pending request", func() {
			Eventually(slow).Should(Receive(MatchError(jsonrpc.ErrTimeout)))
			Eventually(held).Should(Receive(MatchError(jsonrpc.ErrConnectionClosed)))

			Expect(jsonrpc.Call(ctx, transport, nil, "echo")).To(Succeed())
			Expect(server.connections.Load()).To(Equal(int32(2)))
		})

		When("timeouts are isolated", func() {
			BeforeEach(func() {
				opts.TimeoutPolicy = jsonrpc.TimeoutIsolated
			})

			It("fails only the slow request", func() {
				Eventually(slow).Should(Receive(MatchError(jsonrpc.ErrTimeout)))
				close(server.release)
				Eventually(held).Should(Receive(BeNil()))
				Expect(server.connections.Load()).To(Equal(int32(1)))
			})
		})
	})

	It("fails pending requests on close", func() {
		held := request("held")
		Eventually(server.received).Should(Receive(Equal("held")))
		Expect(transport.Close()).To(Succeed())
		Eventually(held).Should(Receive(MatchError(jsonrpc.ErrConnectionClosed)))
	})
})
