package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ccc/internal/config"
	"ccc/internal/core"
	"ccc/pkg/fixedpoint"
	"ccc/pkg/log"
	"ccc/pkg/signer"
	"ccc/pkg/signer/verify"
	"ccc/pkg/txbuilder"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ckbDecimals = 8

func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := log.NewZapLogger("ccc", zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Name:  "ccc",
		Usage: "inspect and move CKB with a local key",
		Commands: []*cli.Command{
			{
				Name:   "address",
				Usage:  "print the recommended address of the configured key",
				Action: withWallet(logger, runAddress),
			},
			{
				Name:      "balance",
				Usage:     "print the plain capacity of an address, or of the configured key",
				ArgsUsage: "[address]",
				Action:    withWallet(logger, runBalance),
			},
			{
				Name:  "transfer",
				Usage: "send CKB to an address",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "recipient address", Required: true},
					&cli.StringFlag{Name: "amount", Usage: "amount in CKB, e.g. 100.5", Required: true},
					&cli.Uint64Flag{Name: "fee-rate", Usage: "shannons per 1000 bytes, 0 asks the node"},
				},
				Action: withWallet(logger, runTransfer),
			},
			{
				Name:      "sign-message",
				Usage:     "sign a message with the configured key",
				ArgsUsage: "<message>",
				Action:    withWallet(logger, runSignMessage),
			},
			{
				Name:      "verify-message",
				Usage:     "verify a message signature",
				ArgsUsage: "<message> <signature>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sign-type", Usage: "CkbSecp256k1, EvmPersonal, BtcEcdsa or NostrEvent", Required: true},
					&cli.StringFlag{Name: "identity", Usage: "public key or address the signature belongs to", Required: true},
				},
				Action: runVerifyMessage,
			},
		},
	}

	return app.RunContext(ctx, os.Args)
}

type session struct {
	cfg    config.App
	signer signer.Signer
	wallet *core.Wallet
}

func openSession(logger *zap.SugaredLogger) (*session, func(), error) {
	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return nil, nil, err
	}

	c, err := newClient(logger, cfg)
	if err != nil {
		logger.Errorw("failed to create client", "error", err)
		return nil, nil, err
	}
	closeClient := func() {
		if err := c.Close(); err != nil {
			logger.Warnw("failed to close client", "error", err)
		}
	}

	s, err := newSigner(cfg, c)
	if err != nil {
		closeClient()
		logger.Errorw("failed to create signer", "error", err)
		return nil, nil, err
	}

	builder := txbuilder.New(logger, c, s)
	return &session{
		cfg:    cfg,
		signer: s,
		wallet: core.NewWallet(logger, c, builder, s),
	}, closeClient, nil
}

func withWallet(logger *zap.SugaredLogger, run func(*cli.Context, *session) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		sess, closeSession, err := openSession(logger)
		if err != nil {
			return err
		}
		defer closeSession()
		return run(c, sess)
	}
}

func runAddress(c *cli.Context, sess *session) error {
	addr, err := sess.wallet.Address(c.Context)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, addr)
	return err
}

func runBalance(c *cli.Context, sess *session) error {
	balance, err := sess.wallet.Balance(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s CKB\n", fixedpoint.ToString(fixedpoint.FromUint(balance, 0), ckbDecimals))
	return err
}

func runTransfer(c *cli.Context, sess *session) error {
	amount, err := fixedpoint.From(c.String("amount"), ckbDecimals)
	if err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}
	if !amount.IsUint64() {
		return fmt.Errorf("amount %s out of range", c.String("amount"))
	}

	feeRate := c.Uint64("fee-rate")
	if feeRate == 0 {
		feeRate = sess.cfg.FeeRate
	}

	res, err := sess.wallet.Transfer(c.Context, core.TransferRequest{
		To:      c.String("to"),
		Amount:  amount.Uint64(),
		FeeRate: feeRate,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s\nfee %s CKB\n",
		res.Hash.Hex(), fixedpoint.ToString(fixedpoint.FromUint(res.Fee, 0), ckbDecimals))
	return err
}

func runSignMessage(c *cli.Context, sess *session) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one message", 2)
	}
	sig, err := signer.SignMessage(c.Context, sess.signer, []byte(c.Args().First()))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "sign type: %s\nidentity:  %s\nsignature: %s\n", sig.SignType, sig.Identity, sig.Signature)
	return err
}

func runVerifyMessage(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("expected a message and a signature", 2)
	}
	ok, err := verify.Message([]byte(c.Args().Get(0)), &signer.Signature{
		Signature: c.Args().Get(1),
		Identity:  c.String("identity"),
		SignType:  signer.SignType(c.String("sign-type")),
	})
	if err != nil {
		return err
	}
	if !ok {
		return cli.Exit("signature does not match", 1)
	}
	_, err = fmt.Fprintln(c.App.Writer, "valid")
	return err
}
