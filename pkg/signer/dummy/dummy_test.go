package dummy_test

import (
	"context"
	"errors"

	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc/fake"
	"ccc/pkg/signer"
	"ccc/pkg/signer/dummy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dummy signers", func() {
	var (
		ctx context.Context
		c   *client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		c = client.New(new(fake.Transport), cache.NewMemory(), client.Options{Network: client.Testnet})
	})

	Describe("OpenLink", func() {
		var (
			opened  []string
			openErr error
			s       *dummy.OpenLink
		)

		BeforeEach(func() {
			opened = nil
			openErr = nil
			s = dummy.NewOpenLink(c, signer.TypeEVM, "https://wallet.example/install", func(_ context.Context, link string) error {
				opened = append(opened, link)
				return openErr
			})
		})

		It("should open the link on connect and stay disconnected", func() {
			Expect(s.Connect(ctx)).To(Succeed())
			Expect(opened).To(Equal([]string{"https://wallet.example/install"}))

			connected, err := s.IsConnected(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(connected).To(BeFalse())
			Expect(s.Type()).To(Equal(signer.TypeEVM))
		})

		It("should surface opener failures", func() {
			openErr = errors.New("no browser")
			Expect(s.Connect(ctx)).To(MatchError(openErr))
		})

		It("should not support signing", func() {
			_, err := signer.SignMessage(ctx, s, []byte("Hello world"))
			Expect(err).To(MatchError(signer.ErrNotSupported))

			_, err = signer.GetAddresses(ctx, s)
			Expect(err).To(MatchError(signer.ErrNotSupported))

			prepared, err := s.PrepareTransaction(ctx, ckb.NewTransaction())
			Expect(err).NotTo(HaveOccurred())
			Expect(prepared.Inputs).To(BeEmpty())

			_, err = signer.SignTransaction(ctx, s, ckb.NewTransaction())
			Expect(err).To(MatchError(signer.ErrNotSupported))
		})
	})

	Describe("AlwaysError", func() {
		It("should fail every operation with its message", func() {
			s := dummy.NewAlwaysError(c, signer.TypeBTC, "wallet locked")

			err := s.Connect(ctx)
			Expect(err).To(MatchError(signer.ErrNotSupported))
			Expect(err.Error()).To(ContainSubstring("wallet locked"))

			_, err = s.GetIdentity(ctx)
			Expect(err).To(MatchError(signer.ErrNotSupported))
			_, err = signer.GetBalance(ctx, s)
			Expect(err).To(MatchError(signer.ErrNotSupported))
			_, err = signer.SendTransaction(ctx, s, ckb.NewTransaction())
			Expect(err).To(MatchError(signer.ErrNotSupported))

			connected, err := s.IsConnected(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(connected).To(BeFalse())
		})
	})
})
