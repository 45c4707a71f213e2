package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jellydator/validation"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	networkEnvKey    = "CKB_NETWORK"
	rpcURLEnvKey     = "CKB_RPC_URL"
	rpcTimeoutEnvKey = "CKB_RPC_TIMEOUT"
	privateKeyEnvKey = "CKB_PRIVATE_KEY"
	signerEnvKey     = "CKB_SIGNER"
	cacheDSNEnvKey   = "CKB_CACHE_DSN"
	feeRateEnvKey    = "CKB_FEE_RATE"
)

const (
	defaultNetwork    = "testnet"
	defaultSigner     = "ckb"
	defaultRPCTimeout = 30 * time.Second
)

type App struct {
	Network    string
	RPCURL     string
	RPCTimeout time.Duration
	PrivateKey string
	// Signer picks the key family of PrivateKey: ckb, evm, btc or nostr.
	Signer string
	// CacheDSN is a postgres connection string. Empty keeps the cache in memory.
	CacheDSN string
	FeeRate  uint64
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Network, validation.Required, validation.In("mainnet", "testnet")),
		validation.Field(&a.Signer, validation.Required, validation.In("ckb", "evm", "btc", "nostr")),
		validation.Field(&a.RPCTimeout, validation.Min(time.Duration(0))),
	)
}

// NewApp reads the configuration from the environment. Only the private key is mandatory.
func NewApp() (App, error) {
	privateKey, ok := os.LookupEnv(privateKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, privateKeyEnvKey)
	}

	app := App{
		Network:    lookupOr(networkEnvKey, defaultNetwork),
		RPCURL:     os.Getenv(rpcURLEnvKey),
		RPCTimeout: defaultRPCTimeout,
		PrivateKey: privateKey,
		Signer:     lookupOr(signerEnvKey, defaultSigner),
		CacheDSN:   os.Getenv(cacheDSNEnvKey),
	}

	if v := os.Getenv(rpcTimeoutEnvKey); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", rpcTimeoutEnvKey, err)
		}
		app.RPCTimeout = timeout
	}

	if v := os.Getenv(feeRateEnvKey); v != "" {
		feeRate, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", feeRateEnvKey, err)
		}
		app.FeeRate = feeRate
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}
	return app, nil
}

func lookupOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
