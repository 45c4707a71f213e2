package verify_test

import (
	"context"

	"ccc/pkg/client"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc/fake"
	"ccc/pkg/signer"
	"ccc/pkg/signer/btc"
	"ccc/pkg/signer/ckbsigner"
	"ccc/pkg/signer/evm"
	"ccc/pkg/signer/nostr"
	"ccc/pkg/signer/verify"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const privateKey = "0x0101010101010101010101010101010101010101010101010101010101010101"

var _ = Describe("Message", func() {
	var (
		ctx context.Context
		c   *client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		c = client.New(new(fake.Transport), cache.NewMemory(), client.Options{Network: client.Testnet})
	})

	DescribeTable("should verify signatures of every signer family",
		func(newSigner func(*client.Client) (signer.Signer, error)) {
			s, err := newSigner(c)
			Expect(err).NotTo(HaveOccurred())

			sig, err := signer.SignMessage(ctx, s, []byte("Hello world"))
			Expect(err).NotTo(HaveOccurred())

			ok, err := verify.Message([]byte("Hello world"), sig)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = verify.Message([]byte("Wrong message"), sig)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		},
		Entry("ckb", func(c *client.Client) (signer.Signer, error) { return ckbsigner.NewPrivateKey(c, privateKey) }),
		Entry("evm", func(c *client.Client) (signer.Signer, error) { return evm.NewPrivateKey(c, privateKey) }),
		Entry("btc", func(c *client.Client) (signer.Signer, error) { return btc.NewPrivateKey(c, privateKey) }),
		Entry("nostr", func(c *client.Client) (signer.Signer, error) { return nostr.NewPrivateKey(c, privateKey) }),
	)

	It("should refuse unknown sign types", func() {
		_, err := verify.Message([]byte("Hello world"), &signer.Signature{SignType: signer.SignTypeUnknown})
		Expect(err).To(MatchError(verify.ErrUnknownSignType))
	})
})
