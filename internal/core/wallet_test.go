package core_test

import (
	"context"
	"errors"

	"ccc/internal/core"
	"ccc/internal/core/fake"
	"ccc/pkg/address"
	"ccc/pkg/ckb"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Wallet", func() {
	var (
		fakeChain   *fake.Chain
		fakeBuilder *fake.TxBuilder
		fakeSigner  *fake.Signer
		ctx         context.Context

		wallet *core.Wallet

		own     *address.Address
		other   *address.Address
		fakeErr error
	)

	lock := func(arg byte) *ckb.Script {
		return &ckb.Script{
			CodeHash: common.HexToHash("0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8"),
			HashType: ckb.HashTypeType,
			Args:     common.LeftPadBytes([]byte{arg}, 20),
		}
	}

	BeforeEach(func() {
		fakeChain = new(fake.Chain)
		fakeBuilder = new(fake.TxBuilder)
		fakeSigner = new(fake.Signer)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		var err error
		own, err = address.New(lock(1), address.PrefixTestnet)
		Expect(err).NotTo(HaveOccurred())
		other, err = address.New(lock(2), address.PrefixTestnet)
		Expect(err).NotTo(HaveOccurred())

		fakeChain.AddressPrefixReturns(address.PrefixTestnet)
		fakeSigner.GetRecommendedAddressObjReturns(own, nil)
		fakeSigner.GetAddressObjsReturns([]*address.Address{own}, nil)

		wallet = core.NewWallet(zap.NewNop().Sugar(), fakeChain, fakeBuilder, fakeSigner)
	})

	Describe("Address", func() {
		It("should return the recommended address", func() {
			addr, err := wallet.Address(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(Equal(own.String()))
		})

		When("the signer fails", func() {
			BeforeEach(func() {
				fakeSigner.GetRecommendedAddressObjReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := wallet.Address(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Balance", func() {
		BeforeEach(func() {
			fakeChain.GetBalanceReturns(42, nil)
		})

		It("should default to the signer's locks", func() {
			balance, err := wallet.Balance(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(uint64(42)))

			_, locks := fakeChain.GetBalanceArgsForCall(0)
			Expect(locks).To(Equal([]*ckb.Script{own.Script}))
		})

		It("should query a given address", func() {
			_, err := wallet.Balance(ctx, other.String())
			Expect(err).NotTo(HaveOccurred())

			_, locks := fakeChain.GetBalanceArgsForCall(0)
			Expect(locks).To(Equal([]*ckb.Script{other.Script}))
			Expect(fakeSigner.GetAddressObjsCallCount()).To(BeZero())
		})

		It("should refuse addresses of another network", func() {
			mainnet, err := address.New(lock(2), address.PrefixMainnet)
			Expect(err).NotTo(HaveOccurred())

			_, err = wallet.Balance(ctx, mainnet.String())
			Expect(err).To(MatchError(core.ErrWrongNetwork))
			Expect(fakeChain.GetBalanceCallCount()).To(BeZero())
		})
	})

	Describe("Transfer", func() {
		var (
			req    core.TransferRequest
			result *core.TransferResult
			err    error
			input  *ckb.Cell
			hash   ckb.Hash
		)

		BeforeEach(func() {
			req = core.TransferRequest{To: other.String(), Amount: 100 * ckb.ShannonsPerByte, FeeRate: 1000}
			input = &ckb.Cell{
				OutPoint:   ckb.NewOutPoint(ckb.Hash{1}, 0),
				CellOutput: &ckb.CellOutput{Capacity: 200 * ckb.ShannonsPerByte, Lock: own.Script},
				OutputData: []byte{},
			}
			hash = ckb.Hash{0xaa}

			fakeBuilder.CompleteFeeChangeToLockStub = func(_ context.Context, tx *ckb.Transaction, change *ckb.Script, _ uint64) (int, error) {
				tx.AddInput(input.CellInput())
				tx.AddOutput(&ckb.CellOutput{Capacity: 99*ckb.ShannonsPerByte - 500, Lock: change}, nil)
				return 1, nil
			}
			fakeChain.GetCellReturns(input, nil)
			fakeSigner.PrepareTransactionStub = func(_ context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
				return tx.Clone(), nil
			}
			fakeSigner.SignOnlyTransactionStub = func(_ context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
				return tx.Clone(), nil
			}
			fakeChain.SendTransactionReturns(hash, nil)
		})

		JustBeforeEach(func() {
			result, err = wallet.Transfer(ctx, req)
		})

		It("should build, sign and send the payment", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Hash).To(Equal(hash))
			Expect(result.Inputs).To(Equal(1))
			Expect(result.Fee).To(Equal(uint64(ckb.ShannonsPerByte + 500)))

			_, tx, change, feeRate := fakeBuilder.CompleteFeeChangeToLockArgsForCall(0)
			Expect(change).To(Equal(own.Script))
			Expect(feeRate).To(Equal(uint64(1000)))
			Expect(tx.Outputs[0].Lock).To(Equal(other.Script))
			Expect(tx.Outputs[0].Capacity).To(Equal(req.Amount))

			Expect(fakeSigner.PrepareTransactionCallCount()).To(Equal(1))
			Expect(fakeSigner.SignOnlyTransactionCallCount()).To(Equal(1))
			_, sent := fakeChain.SendTransactionArgsForCall(0)
			Expect(sent.Outputs).To(HaveLen(2))
		})

		When("the amount is below a cell", func() {
			BeforeEach(func() {
				req.Amount = 60 * ckb.ShannonsPerByte
			})

			It("should refuse the request", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakeBuilder.CompleteFeeChangeToLockCallCount()).To(BeZero())
			})
		})

		When("the recipient is missing", func() {
			BeforeEach(func() {
				req.To = ""
			})

			It("should refuse the request", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
			})
		})

		When("the builder cannot fund the transfer", func() {
			BeforeEach(func() {
				fakeBuilder.CompleteFeeChangeToLockStub = nil
				fakeBuilder.CompleteFeeChangeToLockReturns(0, fakeErr)
			})

			It("should not sign anything", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSigner.SignOnlyTransactionCallCount()).To(BeZero())
				Expect(fakeChain.SendTransactionCallCount()).To(BeZero())
			})
		})

		When("the node rejects the transaction", func() {
			BeforeEach(func() {
				fakeChain.SendTransactionReturns(ckb.Hash{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result).To(BeNil())
			})
		})
	})
})
