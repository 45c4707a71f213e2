package client

import (
	"context"
	"fmt"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// MinFeeRate is the lowest fee rate in shannons per 1000 bytes the node relays.
const MinFeeRate uint64 = 1000

type Options struct {
	Network          Network
	Logger           *zap.SugaredLogger
	OutputsValidator OutputsValidator
}

// Client reads chain state through a node and keeps a cache of what it has
// seen and sent.
type Client struct {
	transport jsonrpc.Transport
	cache     cache.Cache
	network   Network
	validator OutputsValidator
	logs      *zap.SugaredLogger
}

func New(transport jsonrpc.Transport, c cache.Cache, opts Options) *Client {
	if c == nil {
		c = cache.NewMemory()
	}
	if opts.Network == "" {
		opts.Network = Testnet
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return &Client{
		transport: transport,
		cache:     c,
		network:   opts.Network,
		validator: opts.OutputsValidator,
		logs:      opts.Logger,
	}
}

func NewPublicMainnet(logger *zap.SugaredLogger) *Client {
	return New(jsonrpc.NewHTTPTransport(Mainnet.DefaultURL(), jsonrpc.HTTPOptions{}), nil, Options{Network: Mainnet, Logger: logger})
}

func NewPublicTestnet(logger *zap.SugaredLogger) *Client {
	return New(jsonrpc.NewHTTPTransport(Testnet.DefaultURL(), jsonrpc.HTTPOptions{}), nil, Options{Network: Testnet, Logger: logger})
}

func (c *Client) Network() Network {
	return c.network
}

func (c *Client) AddressPrefix() string {
	return c.network.AddressPrefix()
}

func (c *Client) Cache() cache.Cache {
	return c.cache
}

func (c *Client) Close() error {
	return c.transport.Close()
}

// GetKnownScript returns a copy of a well known script deployment on the client's network.
func (c *Client) GetKnownScript(script KnownScript) (*ScriptInfo, error) {
	info, ok := knownScripts[c.network][script]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownScript, script, c.network)
	}
	return info.clone(), nil
}

func (c *Client) GetTip(ctx context.Context) (uint64, error) {
	var tip hexutil.Uint64
	if err := jsonrpc.Call(ctx, c.transport, &tip, "get_tip_block_number"); err != nil {
		return 0, fmt.Errorf("get tip: %w", err)
	}
	return uint64(tip), nil
}

func (c *Client) GetTipHeader(ctx context.Context) (*TipHeader, error) {
	var h headerJSON
	if err := jsonrpc.Call(ctx, c.transport, &h, "get_tip_header"); err != nil {
		return nil, fmt.Errorf("get tip header: %w", err)
	}
	return &TipHeader{
		Number:     uint64(h.Number),
		Hash:       h.Hash,
		ParentHash: h.ParentHash,
		Epoch:      uint64(h.Epoch),
		Timestamp:  uint64(h.Timestamp),
	}, nil
}

// GetFeeRate returns the median fee rate of recent blocks, never below MinFeeRate.
func (c *Client) GetFeeRate(ctx context.Context) (uint64, error) {
	var stats *feeRateStatisticsJSON
	if err := jsonrpc.Call(ctx, c.transport, &stats, "get_fee_rate_statistics", nil); err != nil {
		return 0, fmt.Errorf("get fee rate: %w", err)
	}
	if stats == nil || uint64(stats.Median) < MinFeeRate {
		return MinFeeRate, nil
	}
	return uint64(stats.Median), nil
}

// SendTransaction submits tx and marks its inputs spent and its outputs usable in the cache.
func (c *Client) SendTransaction(ctx context.Context, tx *ckb.Transaction) (ckb.Hash, error) {
	params := []any{tx}
	if c.validator != "" {
		params = append(params, c.validator)
	}

	var hash ckb.Hash
	if err := jsonrpc.Call(ctx, c.transport, &hash, "send_transaction", params...); err != nil {
		return ckb.Hash{}, fmt.Errorf("send transaction %s: %w", tx.Hash().Hex(), err)
	}

	if err := c.cache.MarkTransactions(ctx, tx); err != nil {
		c.logs.Errorw("failed to mark sent transaction in cache",
			"tx_hash", hash.Hex(),
			"error", err,
		)
		return hash, fmt.Errorf("mark sent transaction %s: %w", hash.Hex(), err)
	}

	c.logs.Infow("transaction sent",
		"tx_hash", hash.Hex(),
		"inputs", len(tx.Inputs),
		"outputs", len(tx.Outputs),
	)
	return hash, nil
}
