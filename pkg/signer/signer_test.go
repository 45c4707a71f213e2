package signer_test

import (
	"context"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc"
	"ccc/pkg/jsonrpc/fake"
	"ccc/pkg/signer"
	"ccc/pkg/signer/ckbsigner"

	jsoniter "github.com/json-iterator/go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const privateKey = "0x0101010101010101010101010101010101010101010101010101010101010101"

var _ = Describe("Signer helpers", func() {
	var (
		ctx           context.Context
		fakeTransport *fake.Transport
		memory        *cache.Memory
		c             *client.Client
		s             *ckbsigner.PrivateKey
		results       map[string]any
		lock          *ckb.Script
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeTransport = new(fake.Transport)
		memory = cache.NewMemory()
		c = client.New(fakeTransport, memory, client.Options{Network: client.Testnet})
		results = map[string]any{}

		fakeTransport.RequestCalls(func(_ context.Context, req *jsonrpc.Request) (*jsonrpc.Response, error) {
			result, ok := results[req.Method]
			if !ok {
				return nil, fmt.Errorf("unexpected method %s", req.Method)
			}
			raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(result)
			if err != nil {
				return nil, err
			}
			return &jsonrpc.Response{ID: req.ID, JSONRPC: "2.0", Result: raw}, nil
		})

		var err error
		s, err = ckbsigner.NewPrivateKey(c, privateKey)
		Expect(err).NotTo(HaveOccurred())
		lock, err = s.Lock()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should list the recommended address first", func() {
		addrs, err := signer.GetAddresses(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		recommended, err := signer.GetRecommendedAddress(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(HaveLen(1))
		Expect(addrs[0]).To(Equal(recommended))
	})

	It("should ask the node for the balance of the signer's locks", func() {
		results["get_cells_capacity"] = map[string]any{"capacity": "0x2540be400"}

		balance, err := signer.GetBalance(ctx, s)
		Expect(err).NotTo(HaveOccurred())
		Expect(balance).To(Equal(uint64(100 * ckb.ShannonsPerByte)))

		_, req := fakeTransport.RequestArgsForCall(0)
		key := req.Params.([]any)[0].(*cache.SearchKey)
		Expect(key.Script).To(Equal(lock))
	})

	It("should find cells locked by the signer", func() {
		cell := &ckb.Cell{
			OutPoint:   ckb.NewOutPoint(ckb.Hash{3}, 0),
			CellOutput: &ckb.CellOutput{Capacity: 100 * ckb.ShannonsPerByte, Lock: lock},
			OutputData: []byte{},
		}
		Expect(memory.MarkUsable(ctx, cell)).To(Succeed())
		results["get_cells"] = map[string]any{"objects": []any{}, "last_cursor": ""}

		var found []*ckb.Cell
		for cell, err := range signer.FindCells(ctx, s, nil, true) {
			Expect(err).NotTo(HaveOccurred())
			found = append(found, cell)
		}
		Expect(found).To(HaveLen(1))
		Expect(found[0].OutPoint).To(Equal(cell.OutPoint))
	})

	It("should sign and send transactions", func() {
		cell := &ckb.Cell{
			OutPoint:   ckb.NewOutPoint(ckb.Hash{4}, 0),
			CellOutput: &ckb.CellOutput{Capacity: 100 * ckb.ShannonsPerByte, Lock: lock},
			OutputData: []byte{},
		}
		Expect(memory.MarkUsable(ctx, cell)).To(Succeed())
		tx := ckb.NewTransaction()
		tx.AddInput(cell.CellInput())
		tx.AddOutput(&ckb.CellOutput{Capacity: 99 * ckb.ShannonsPerByte, Lock: lock}, nil)
		results["send_transaction"] = tx.Hash()

		hash, err := signer.SendTransaction(ctx, s, tx)
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).To(Equal(tx.Hash()))

		_, req := fakeTransport.RequestArgsForCall(0)
		sent := req.Params.([]any)[0].(*ckb.Transaction)
		Expect(sent.Witnesses).To(HaveLen(1))

		unusable, err := memory.IsUnusable(ctx, cell.OutPoint)
		Expect(err).NotTo(HaveOccurred())
		Expect(unusable).To(BeTrue())
	})

	It("should fail without addresses", func() {
		_, err := signer.GetRecommendedAddress(ctx, noAddresses{s})
		Expect(err).To(MatchError(signer.ErrNoAddress))
	})
})

type noAddresses struct {
	signer.Signer
}

func (noAddresses) GetAddressObjs(context.Context) ([]*address.Address, error) {
	return nil, nil
}

func (n noAddresses) GetRecommendedAddressObj(ctx context.Context) (*address.Address, error) {
	return signer.RecommendedAddressObj(ctx, n)
}
