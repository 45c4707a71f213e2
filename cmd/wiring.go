package cmd

import (
	"fmt"
	"strings"

	"ccc/internal/config"
	"ccc/internal/db"
	"ccc/internal/repository"
	"ccc/pkg/client"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc"
	"ccc/pkg/signer"
	"ccc/pkg/signer/btc"
	"ccc/pkg/signer/ckbsigner"
	"ccc/pkg/signer/evm"
	"ccc/pkg/signer/nostr"

	"go.uber.org/zap"
)

func newTransport(logger *zap.SugaredLogger, cfg config.App, network client.Network) jsonrpc.Transport {
	url := cfg.RPCURL
	if url == "" {
		url = network.DefaultURL()
	}
	if strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://") {
		return jsonrpc.NewWebSocketTransport(logger, url, jsonrpc.WebSocketOptions{Timeout: cfg.RPCTimeout})
	}
	return jsonrpc.NewHTTPTransport(url, jsonrpc.HTTPOptions{Timeout: cfg.RPCTimeout})
}

func newCache(logger *zap.SugaredLogger, cfg config.App) (cache.Cache, error) {
	if cfg.CacheDSN == "" {
		return cache.NewMemory(), nil
	}

	dbConn, err := db.NewPostgresDB(cfg.CacheDSN)
	if err != nil {
		return nil, err
	}
	repo := repository.NewCacheRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return cache.NewPersistent(logger, repo), nil
}

func newClient(logger *zap.SugaredLogger, cfg config.App) (*client.Client, error) {
	network, err := client.NetworkFrom(cfg.Network)
	if err != nil {
		return nil, err
	}
	c, err := newCache(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return client.New(newTransport(logger, cfg, network), c, client.Options{
		Network: network,
		Logger:  logger,
	}), nil
}

func newSigner(cfg config.App, c *client.Client) (signer.Signer, error) {
	switch cfg.Signer {
	case "evm":
		return evm.NewPrivateKey(c, cfg.PrivateKey)
	case "btc":
		return btc.NewPrivateKey(c, cfg.PrivateKey)
	case "nostr":
		return nostr.NewPrivateKey(c, cfg.PrivateKey)
	default:
		return ckbsigner.NewPrivateKey(c, cfg.PrivateKey)
	}
}
