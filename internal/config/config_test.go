package config_test

import (
	"os"
	"time"

	"ccc/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	BeforeEach(func() {
		for _, key := range []string{"CKB_NETWORK", "CKB_RPC_URL", "CKB_RPC_TIMEOUT", "CKB_SIGNER", "CKB_CACHE_DSN", "CKB_FEE_RATE"} {
			GinkgoT().Setenv(key, "")
		}
		GinkgoT().Setenv("CKB_PRIVATE_KEY", "0x01")
	})

	It("should apply defaults", func() {
		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Network).To(Equal("testnet"))
		Expect(app.Signer).To(Equal("ckb"))
		Expect(app.RPCTimeout).To(Equal(30 * time.Second))
		Expect(app.PrivateKey).To(Equal("0x01"))
	})

	It("should parse every variable", func() {
		GinkgoT().Setenv("CKB_NETWORK", "mainnet")
		GinkgoT().Setenv("CKB_RPC_URL", "wss://node.example/ws")
		GinkgoT().Setenv("CKB_RPC_TIMEOUT", "5s")
		GinkgoT().Setenv("CKB_SIGNER", "nostr")
		GinkgoT().Setenv("CKB_CACHE_DSN", "postgres://ccc@localhost/ccc")
		GinkgoT().Setenv("CKB_FEE_RATE", "1500")

		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(app).To(Equal(config.App{
			Network:    "mainnet",
			RPCURL:     "wss://node.example/ws",
			RPCTimeout: 5 * time.Second,
			PrivateKey: "0x01",
			Signer:     "nostr",
			CacheDSN:   "postgres://ccc@localhost/ccc",
			FeeRate:    1500,
		}))
	})

	It("should reject unknown networks and signers", func() {
		GinkgoT().Setenv("CKB_NETWORK", "devnet")
		_, err := config.NewApp()
		Expect(err).To(HaveOccurred())

		GinkgoT().Setenv("CKB_NETWORK", "testnet")
		GinkgoT().Setenv("CKB_SIGNER", "solana")
		_, err = config.NewApp()
		Expect(err).To(HaveOccurred())
	})

	It("should require a private key", func() {
		Expect(os.Unsetenv("CKB_PRIVATE_KEY")).To(Succeed())
		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("CKB_PRIVATE_KEY")))
	})

	It("should reject malformed numbers", func() {
		GinkgoT().Setenv("CKB_RPC_TIMEOUT", "soon")
		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("CKB_RPC_TIMEOUT")))
	})
})
