package cache_test

import (
	"context"
	"errors"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"
	"ccc/pkg/client/cache/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Persistent", func() {
	var (
		ctx        context.Context
		fakeStore  *fake.Store
		persistent *cache.Persistent
		cell       *ckb.Cell
		testErr    error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStore = new(fake.Store)
		persistent = cache.NewPersistent(zap.NewNop().Sugar(), fakeStore)
		cell = newCell(1, 0, lockScript(1))
		testErr = errors.New("test error")
	})

	Describe("MarkUsable", func() {
		var err error

		JustBeforeEach(func() {
			err = persistent.MarkUsable(ctx, cell)
		})

		It("lifts the tombstone and stores the cell as usable", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStore.RemoveUnusableCallCount()).To(Equal(1))
			_, outPoints := fakeStore.RemoveUnusableArgsForCall(0)
			Expect(outPoints).To(HaveLen(1))
			Expect(outPoints[0].Eq(cell.OutPoint)).To(BeTrue())

			Expect(fakeStore.UpsertCellsCallCount()).To(Equal(1))
			_, cells, usable := fakeStore.UpsertCellsArgsForCall(0)
			Expect(cells).To(Equal([]*ckb.Cell{cell}))
			Expect(usable).To(BeTrue())
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.RemoveUnusableReturns(testErr)
			})

			It("returns the error and stores nothing", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(HavePrefix("mark usable"))
				Expect(fakeStore.UpsertCellsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("MarkUnusable", func() {
		It("tombstones and demotes the cell", func() {
			Expect(persistent.MarkUnusable(ctx, cell.OutPoint)).To(Succeed())

			Expect(fakeStore.AddUnusableCallCount()).To(Equal(1))
			Expect(fakeStore.SetCellsUsableCallCount()).To(Equal(1))
			_, outPoints, usable := fakeStore.SetCellsUsableArgsForCall(0)
			Expect(outPoints).To(HaveLen(1))
			Expect(usable).To(BeFalse())
		})
	})

	Describe("GetCell", func() {
		It("asks for usable cells only", func() {
			fakeStore.GetCellReturns(cell, nil)

			got, err := persistent.GetCell(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(cell))

			_, _, usableOnly := fakeStore.GetCellArgsForCall(0)
			Expect(usableOnly).To(BeTrue())
		})

		It("asks for any cell when resolving known cells", func() {
			_, err := persistent.GetKnownCell(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())

			_, _, usableOnly := fakeStore.GetCellArgsForCall(0)
			Expect(usableOnly).To(BeFalse())
		})
	})

	Describe("FindCells", func() {
		var (
			lockA, lockB *ckb.Script
			stored       []cache.StoredCell
			key          *cache.SearchKey
		)

		BeforeEach(func() {
			lockA = lockScript(0xaa)
			lockB = lockScript(0xbb)
			key = &cache.SearchKey{Script: lockA, ScriptType: cache.ScriptTypeLock, ScriptSearchMode: cache.SearchModeExact}

			stored = nil
			for i := 0; i < 250; i++ {
				lock := lockA
				if i%2 == 1 {
					lock = lockB
				}
				stored = append(stored, cache.StoredCell{Seq: uint64(i + 1), Cell: newCell(2, uint32(i), lock)})
			}
			fakeStore.ListUsableCellsStub = func(_ context.Context, after uint64, limit int) ([]cache.StoredCell, error) {
				start := int(after)
				end := min(start+limit, len(stored))
				return stored[start:end], nil
			}
		})

		It("pages through the store and filters", func() {
			count := 0
			for c, err := range persistent.FindCells(ctx, key) {
				Expect(err).NotTo(HaveOccurred())
				Expect(c.CellOutput.Lock.Eq(lockA)).To(BeTrue())
				count++
			}
			Expect(count).To(Equal(125))
			Expect(fakeStore.ListUsableCellsCallCount()).To(Equal(3))

			_, after, _ := fakeStore.ListUsableCellsArgsForCall(2)
			Expect(after).To(Equal(uint64(200)))
		})

		It("stops loading pages when the caller breaks", func() {
			for range persistent.FindCells(ctx, key) {
				break
			}
			Expect(fakeStore.ListUsableCellsCallCount()).To(Equal(1))
		})

		It("yields store errors", func() {
			fakeStore.ListUsableCellsStub = nil
			fakeStore.ListUsableCellsReturns(nil, testErr)

			var errs []error
			for c, err := range persistent.FindCells(ctx, key) {
				Expect(c).To(BeNil())
				errs = append(errs, err)
			}
			Expect(errs).To(HaveLen(1))
			Expect(errs[0]).To(MatchError(testErr))
		})
	})

	Describe("MarkTransactions", func() {
		It("spends inputs, creates outputs and records the transaction", func() {
			tx := ckb.NewTransaction()
			tx.AddInput(cell.CellInput())
			tx.AddOutput(&ckb.CellOutput{Capacity: 1, Lock: lockScript(2)}, nil)

			Expect(persistent.MarkTransactions(ctx, tx)).To(Succeed())
			Expect(fakeStore.AddUnusableCallCount()).To(Equal(1))
			Expect(fakeStore.UpsertCellsCallCount()).To(Equal(1))
			_, created, _ := fakeStore.UpsertCellsArgsForCall(0)
			Expect(created[0].OutPoint.Eq(ckb.NewOutPoint(tx.Hash(), 0))).To(BeTrue())
			Expect(fakeStore.AppendTransactionsCallCount()).To(Equal(1))
		})
	})
})
