package client_test

import (
	"context"
	"errors"

	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc"
	"ccc/pkg/jsonrpc/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		ctx           context.Context
		fakeTransport *fake.Transport
		node          *fakeNode
		memory        *cache.Memory
		opts          client.Options
		c             *client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeTransport = new(fake.Transport)
		node = newFakeNode(fakeTransport)
		memory = cache.NewMemory()
		opts = client.Options{Network: client.Testnet, Logger: zap.NewNop().Sugar()}
	})

	JustBeforeEach(func() {
		c = client.New(fakeTransport, memory, opts)
	})

	Describe("GetKnownScript", func() {
		It("should return the deployment for the network", func() {
			info, err := c.GetKnownScript(client.Secp256k1Blake160)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.CodeHash).To(Equal(common.HexToHash("0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")))
			Expect(info.CellDeps).To(HaveLen(1))
			Expect(info.CellDeps[0].DepType).To(Equal(ckb.DepTypeDepGroup))
			Expect(info.CellDeps[0].OutPoint.TxHash).To(Equal(common.HexToHash("0xf8de3bb47d055cdf460d93a2a6e1b05f7432f9777c8c474abf4eec1d4aee5d37")))
		})

		It("should return a copy", func() {
			info, err := c.GetKnownScript(client.OmniLock)
			Expect(err).NotTo(HaveOccurred())
			info.CellDeps[0].OutPoint.Index = 99

			again, err := c.GetKnownScript(client.OmniLock)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.CellDeps[0].OutPoint.Index).To(Equal(uint32(0)))
		})

		It("should build scripts with args", func() {
			info, err := c.GetKnownScript(client.Secp256k1Blake160)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Script([]byte{1, 2}).Eq(&ckb.Script{CodeHash: info.CodeHash, HashType: ckb.HashTypeType, Args: []byte{1, 2}})).To(BeTrue())
		})

		It("should fail for an unknown script", func() {
			_, err := c.GetKnownScript("Nope")
			Expect(err).To(MatchError(client.ErrUnknownScript))
		})
	})

	Describe("Network", func() {
		It("should parse network names", func() {
			n, err := client.NetworkFrom("mainnet")
			Expect(err).NotTo(HaveOccurred())
			Expect(n.AddressPrefix()).To(Equal("ckb"))

			_, err = client.NetworkFrom("devnet")
			Expect(err).To(MatchError(client.ErrUnknownNetwork))
		})
	})

	Describe("GetTip", func() {
		It("should decode the tip block number", func() {
			node.on("get_tip_block_number", func([]any) (any, error) { return "0x10", nil })

			tip, err := c.GetTip(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tip).To(Equal(uint64(16)))
		})

		It("should surface node errors", func() {
			node.on("get_tip_block_number", func([]any) (any, error) {
				return nil, &jsonrpc.RPCError{Code: -1, Message: "boom"}
			})

			_, err := c.GetTip(ctx)
			var rpcErr *jsonrpc.RPCError
			Expect(errors.As(err, &rpcErr)).To(BeTrue())
			Expect(rpcErr.Message).To(Equal("boom"))
		})
	})

	Describe("GetFeeRate", func() {
		It("should return the median", func() {
			node.on("get_fee_rate_statistics", func([]any) (any, error) {
				return map[string]string{"mean": "0x8fc", "median": "0x7d0"}, nil
			})

			rate, err := c.GetFeeRate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rate).To(Equal(uint64(2000)))
		})

		It("should not go below the minimum", func() {
			node.on("get_fee_rate_statistics", func([]any) (any, error) {
				return map[string]string{"mean": "0x64", "median": "0x64"}, nil
			})

			rate, err := c.GetFeeRate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rate).To(Equal(client.MinFeeRate))
		})

		It("should fall back to the minimum without statistics", func() {
			node.on("get_fee_rate_statistics", func([]any) (any, error) { return nil, nil })

			rate, err := c.GetFeeRate(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rate).To(Equal(client.MinFeeRate))
		})
	})

	Describe("transactions", func() {
		var tx *ckb.Transaction

		BeforeEach(func() {
			tx = ckb.NewTransaction()
			tx.AddOutput(&ckb.CellOutput{Capacity: 100 * ckb.ShannonsPerByte, Lock: lockScript(1)}, []byte{0xab})
			tx.AddOutput(&ckb.CellOutput{Capacity: 200 * ckb.ShannonsPerByte, Lock: lockScript(2)}, nil)

			node.on("get_transaction", func(params []any) (any, error) {
				if params[0].(ckb.Hash) != tx.Hash() {
					return nil, nil
				}
				return map[string]any{
					"transaction": tx,
					"tx_status": map[string]any{
						"status":       "committed",
						"block_hash":   common.HexToHash("0x0b"),
						"block_number": "0x5",
					},
				}, nil
			})
		})

		It("should fetch from the node once and then serve from the cache", func() {
			got, err := c.GetTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Hash()).To(Equal(tx.Hash()))

			got, err = c.GetTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Hash()).To(Equal(tx.Hash()))
			Expect(node.count("get_transaction")).To(Equal(1))
		})

		It("should report status", func() {
			res, err := c.GetTransactionWithStatus(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(client.StatusCommitted))
			Expect(*res.BlockNumber).To(Equal(uint64(5)))
			Expect(*res.BlockHash).To(Equal(common.HexToHash("0x0b")))
		})

		It("should return nothing for an unknown hash", func() {
			got, err := c.GetTransaction(ctx, common.HexToHash("0xff"))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})

		It("should fetch many transactions keeping their order", func() {
			unknown := common.HexToHash("0xff")

			got, err := c.GetTransactions(ctx, []ckb.Hash{unknown, tx.Hash()})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(2))
			Expect(got[0]).To(BeNil())
			Expect(got[1].Hash()).To(Equal(tx.Hash()))
		})

		It("should join fetch errors", func() {
			node.on("get_transaction", func([]any) (any, error) {
				return nil, &jsonrpc.RPCError{Code: -3, Message: "down"}
			})

			got, err := c.GetTransactions(ctx, []ckb.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("down"))
			Expect(got).To(HaveLen(2))
			Expect(got[0]).To(BeNil())
			Expect(got[1]).To(BeNil())
		})

		Describe("GetCell", func() {
			It("should resolve the output of a fetched transaction", func() {
				cell, err := c.GetCell(ctx, ckb.NewOutPoint(tx.Hash(), 0))
				Expect(err).NotTo(HaveOccurred())
				Expect(cell.CellOutput.Capacity).To(Equal(100 * ckb.ShannonsPerByte))
				Expect(cell.OutputData).To(Equal([]byte{0xab}))
			})

			It("should prefer the cache", func() {
				cached := newCell(7, 0, lockScript(7))
				Expect(memory.RecordCells(ctx, cached)).To(Succeed())

				cell, err := c.GetCell(ctx, cached.OutPoint)
				Expect(err).NotTo(HaveOccurred())
				Expect(cell.Eq(cached)).To(BeTrue())
				Expect(fakeTransport.RequestCallCount()).To(Equal(0))
			})

			It("should resolve cells the cache already saw spent", func() {
				spent := newCell(8, 0, lockScript(8))
				Expect(memory.MarkUsable(ctx, spent)).To(Succeed())
				Expect(memory.MarkUnusable(ctx, spent.OutPoint)).To(Succeed())

				cell, err := c.GetCell(ctx, spent.OutPoint)
				Expect(err).NotTo(HaveOccurred())
				Expect(cell.Eq(spent)).To(BeTrue())
				Expect(fakeTransport.RequestCallCount()).To(Equal(0))
			})

			It("should fail for an index past the outputs", func() {
				_, err := c.GetCell(ctx, ckb.NewOutPoint(tx.Hash(), 5))
				Expect(err).To(MatchError(client.ErrOutPointOutOfRange))
			})
		})
	})

	Describe("GetCellLive", func() {
		var outPoint *ckb.OutPoint

		BeforeEach(func() {
			outPoint = ckb.NewOutPoint(common.HexToHash("0x01"), 0)
		})

		It("should return a live cell", func() {
			node.on("get_live_cell", func(params []any) (any, error) {
				Expect(params[1]).To(Equal(true))
				return map[string]any{
					"cell": map[string]any{
						"output": &ckb.CellOutput{Capacity: 61 * ckb.ShannonsPerByte, Lock: lockScript(1)},
						"data":   map[string]any{"content": "0x0102", "hash": common.Hash{}},
					},
					"status": "live",
				}, nil
			})

			cell, err := c.GetCellLive(ctx, outPoint, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(cell.OutputData).To(Equal([]byte{1, 2}))
			Expect(cell.OutPoint.Eq(outPoint)).To(BeTrue())
		})

		It("should return nothing for a dead cell", func() {
			node.on("get_live_cell", func([]any) (any, error) {
				return map[string]any{"cell": nil, "status": "unknown"}, nil
			})

			cell, err := c.GetCellLive(ctx, outPoint, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(cell).To(BeNil())
		})
	})

	Describe("FindCells", func() {
		var (
			lock              *ckb.Script
			cached, spent     *ckb.Cell
			fresh, duplicated *ckb.Cell
			key               *cache.SearchKey
		)

		BeforeEach(func() {
			lock = lockScript(1)
			cached = newCell(1, 0, lock)
			duplicated = cached.Clone()
			spent = newCell(2, 0, lock)
			fresh = newCell(3, 0, lock)
			key = &cache.SearchKey{Script: lock, ScriptType: cache.ScriptTypeLock, WithData: true}

			Expect(memory.MarkUsable(ctx, cached)).To(Succeed())
			Expect(memory.MarkUnusable(ctx, spent.OutPoint)).To(Succeed())

			node.on("get_cells", func(params []any) (any, error) {
				return map[string]any{
					"objects":     []any{indexerObject(duplicated), indexerObject(spent), indexerObject(fresh)},
					"last_cursor": "0xcafe",
				}, nil
			})
		})

		It("should yield cached cells then new node cells", func() {
			var got []*ckb.Cell
			for cell, err := range c.FindCells(ctx, key) {
				Expect(err).NotTo(HaveOccurred())
				got = append(got, cell)
			}

			Expect(got).To(HaveLen(2))
			Expect(got[0].Eq(cached)).To(BeTrue())
			Expect(got[1].Eq(fresh)).To(BeTrue())
			Expect(node.count("get_cells")).To(Equal(1))
		})

		It("should skip tombstoned cells the cache also recorded", func() {
			Expect(memory.RecordCells(ctx, spent)).To(Succeed())

			var got []*ckb.Cell
			for cell, err := range c.FindCells(ctx, key) {
				Expect(err).NotTo(HaveOccurred())
				got = append(got, cell)
			}

			Expect(got).To(HaveLen(2))
			Expect(got[0].Eq(cached)).To(BeTrue())
			Expect(got[1].Eq(fresh)).To(BeTrue())
		})

		It("should not ask the node when stopped early", func() {
			for range c.FindCells(ctx, key) {
				break
			}
			Expect(node.count("get_cells")).To(Equal(0))
		})

		It("should yield transport errors", func() {
			node.on("get_cells", func([]any) (any, error) {
				return nil, &jsonrpc.RPCError{Code: -1, Message: "indexer down"}
			})

			var errs []error
			for _, err := range c.FindCells(ctx, key) {
				if err != nil {
					errs = append(errs, err)
				}
			}
			Expect(errs).To(HaveLen(1))
		})

		It("should pass the cursor when paging", func() {
			page, err := c.FindCellsPaged(ctx, key, client.OrderDesc, 10, "0xbeef")
			Expect(err).NotTo(HaveOccurred())
			Expect(page.LastCursor).To(Equal("0xcafe"))
			Expect(page.Cells).To(HaveLen(3))

			_, req := fakeTransport.RequestArgsForCall(0)
			params := req.Params.([]any)
			Expect(params).To(HaveLen(4))
			Expect(params[1]).To(Equal(client.OrderDesc))
			Expect(params[3]).To(Equal("0xbeef"))
		})
	})

	Describe("GetBalance", func() {
		It("should sum plain capacity of every lock", func() {
			node.on("get_cells_capacity", func(params []any) (any, error) {
				key := params[0].(*cache.SearchKey)
				Expect(key.Filter.OutputDataLenRange).To(Equal(&cache.Range{Start: 0, End: 1}))
				if key.Script.Args[0] == 1 {
					return map[string]any{"capacity": "0x64"}, nil
				}
				return map[string]any{"capacity": "0xc8"}, nil
			})

			balance, err := c.GetBalance(ctx, []*ckb.Script{lockScript(1), lockScript(2)})
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(uint64(300)))
		})
	})

	Describe("SendTransaction", func() {
		var (
			tx    *ckb.Transaction
			input *ckb.Cell
		)

		BeforeEach(func() {
			input = newCell(9, 0, lockScript(1))
			Expect(memory.MarkUsable(ctx, input)).To(Succeed())

			tx = ckb.NewTransaction()
			tx.AddInput(input.CellInput())
			tx.AddOutput(&ckb.CellOutput{Capacity: 99 * ckb.ShannonsPerByte, Lock: lockScript(2)}, nil)

			node.on("send_transaction", func(params []any) (any, error) {
				return tx.Hash(), nil
			})
		})

		It("should send and update the cache", func() {
			hash, err := c.SendTransaction(ctx, tx)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(tx.Hash()))

			unusable, err := memory.IsUnusable(ctx, input.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(unusable).To(BeTrue())

			created, err := memory.GetCell(ctx, ckb.NewOutPoint(tx.Hash(), 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(created).NotTo(BeNil())

			recorded, err := memory.GetTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(recorded).NotTo(BeNil())

			_, req := fakeTransport.RequestArgsForCall(0)
			Expect(req.Params).To(HaveLen(1))
		})

		When("an outputs validator is configured", func() {
			BeforeEach(func() {
				opts.OutputsValidator = client.ValidatorPassthrough
			})

			It("should pass it to the node", func() {
				_, err := c.SendTransaction(ctx, tx)
				Expect(err).NotTo(HaveOccurred())

				_, req := fakeTransport.RequestArgsForCall(0)
				Expect(req.Params).To(Equal([]any{tx, client.ValidatorPassthrough}))
			})
		})

		When("the node rejects the transaction", func() {
			BeforeEach(func() {
				node.on("send_transaction", func([]any) (any, error) {
					return nil, &jsonrpc.RPCError{Code: -301, Message: "TransactionFailedToResolve"}
				})
			})

			It("should leave the cache untouched", func() {
				_, err := c.SendTransaction(ctx, tx)
				Expect(err).To(HaveOccurred())

				unusable, err := memory.IsUnusable(ctx, input.OutPoint)
				Expect(err).NotTo(HaveOccurred())
				Expect(unusable).To(BeFalse())
			})
		})
	})
})
