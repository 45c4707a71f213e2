package btc_test

import (
	"context"
	"encoding/base64"
	"encoding/hex"

	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc/fake"
	"ccc/pkg/signer"
	"ccc/pkg/signer/btc"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/ethereum/go-ethereum/common/hexutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const privateKey = "0x0101010101010101010101010101010101010101010101010101010101010101"

var _ = Describe("BTC signers", func() {
	var (
		ctx    context.Context
		memory *cache.Memory
		c      *client.Client
		s      *btc.PrivateKey
		pub    *btcec.PublicKey
	)

	BeforeEach(func() {
		ctx = context.Background()
		memory = cache.NewMemory()
		c = client.New(new(fake.Transport), memory, client.Options{Network: client.Testnet})

		var err error
		s, err = btc.NewPrivateKey(c, privateKey)
		Expect(err).NotTo(HaveOccurred())
		_, pub = btcec.PrivKeyFromBytes(hexutil.MustDecode(privateKey))
	})

	Describe("addresses", func() {
		It("should use the compressed public key as identity", func() {
			identity, err := s.GetIdentity(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity).To(Equal(hex.EncodeToString(pub.SerializeCompressed())))
		})

		It("should use a native segwit internal address", func() {
			internal, err := s.GetInternalAddress(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(internal).To(HavePrefix("tb1q"))

			mainnet := client.New(new(fake.Transport), cache.NewMemory(), client.Options{Network: client.Mainnet})
			ms, err := btc.NewPrivateKey(mainnet, privateKey)
			Expect(err).NotTo(HaveOccurred())
			internal, err = ms.GetInternalAddress(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(internal).To(HavePrefix("bc1q"))
		})

		It("should derive an omnilock in bitcoin mode", func() {
			lock, err := s.Lock()
			Expect(err).NotTo(HaveOccurred())
			Expect(lock.Args).To(HaveLen(22))
			Expect(lock.Args[0]).To(Equal(signer.OmniLockAuthBitcoin))
			Expect(lock.Args[1:21]).To(Equal(btcutil.Hash160(pub.SerializeCompressed())))
		})

		It("should reject malformed keys", func() {
			_, err := btc.NewPrivateKey(c, "0x1234")
			Expect(err).To(MatchError(signer.ErrInvalidKey))

			_, err = btc.NewPublicKeyReadonly(c, make([]byte, 33))
			Expect(err).To(MatchError(signer.ErrInvalidKey))
		})
	})

	Describe("messages", func() {
		It("should sign messages that verify only for themselves", func() {
			sig, err := signer.SignMessage(ctx, s, []byte("Hello world"))
			Expect(err).NotTo(HaveOccurred())
			Expect(sig.SignType).To(Equal(signer.SignTypeBtcEcdsa))

			raw, err := base64.StdEncoding.DecodeString(sig.Signature)
			Expect(err).NotTo(HaveOccurred())
			Expect(raw).To(HaveLen(65))

			ok, err := btc.VerifyMessage([]byte("Hello world"), sig.Signature, sig.Identity)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = btc.VerifyMessage([]byte("Wrong message"), sig.Signature, sig.Identity)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should reject signatures that are not base64", func() {
			_, err := btc.VerifyMessage([]byte("Hello world"), "!!", "02")
			Expect(err).To(MatchError(signer.ErrInvalidSignature))

			_, err = btc.VerifyMessage([]byte("Hello world"), base64.StdEncoding.EncodeToString([]byte{1, 2}), "02")
			Expect(err).To(MatchError(signer.ErrInvalidSignature))
		})
	})

	Describe("transactions", func() {
		It("should sign the omnilock witness with a compact signature", func() {
			lock, err := s.Lock()
			Expect(err).NotTo(HaveOccurred())
			cell := &ckb.Cell{
				OutPoint:   ckb.NewOutPoint(ckb.Hash{8}, 0),
				CellOutput: &ckb.CellOutput{Capacity: 500 * ckb.ShannonsPerByte, Lock: lock},
				OutputData: []byte{},
			}
			Expect(memory.RecordCells(ctx, cell)).To(Succeed())
			tx := ckb.NewTransaction()
			tx.AddInput(cell.CellInput())
			tx.AddOutput(&ckb.CellOutput{Capacity: 499 * ckb.ShannonsPerByte, Lock: lock}, nil)

			signed, err := signer.SignTransaction(ctx, s, tx)
			Expect(err).NotTo(HaveOccurred())

			info, err := signed.GetSignHashInfo(ctx, lock, c)
			Expect(err).NotTo(HaveOccurred())
			wa, err := signed.GetWitnessArgsAt(info.Position)
			Expect(err).NotTo(HaveOccurred())
			Expect(wa.Lock).To(HaveLen(signer.OmniLockWitnessLen))

			sig := wa.Lock[20:]
			Expect(sig[0]).To(BeNumerically(">=", 31))
			Expect(sig[0]).To(BeNumerically("<", 35))

			digest := btc.MessageHash([]byte("CKB (Bitcoin Layer) transaction: " + hex.EncodeToString(info.Message[:])))
			recovered, _, err := ecdsa.RecoverCompact(sig, digest)
			Expect(err).NotTo(HaveOccurred())
			Expect(recovered.IsEqual(pub)).To(BeTrue())
		})
	})

	Describe("read only", func() {
		It("should watch the key without signing", func() {
			ro, err := btc.NewPublicKeyReadonly(c, pub.SerializeUncompressed())
			Expect(err).NotTo(HaveOccurred())

			addrs, err := signer.GetAddresses(ctx, ro)
			Expect(err).NotTo(HaveOccurred())
			own, err := signer.GetAddresses(ctx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(addrs).To(Equal(own))

			_, err = signer.SignTransaction(ctx, ro, ckb.NewTransaction())
			Expect(err).To(MatchError(signer.ErrNotSupported))
		})
	})
})
