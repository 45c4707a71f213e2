package cache_test

import (
	"context"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Memory", func() {
	var (
		ctx    context.Context
		memory *cache.Memory
		cell   *ckb.Cell
	)

	BeforeEach(func() {
		ctx = context.Background()
		memory = cache.NewMemory()
		cell = newCell(1, 0, lockScript(1))
	})

	Describe("usable and unusable exclusivity", func() {
		It("drops the usable cell when its out point is marked unusable", func() {
			Expect(memory.MarkUsable(ctx, cell)).To(Succeed())
			Expect(memory.MarkUnusable(ctx, cell.OutPoint)).To(Succeed())

			unusable, err := memory.IsUnusable(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(unusable).To(BeTrue())

			got, err := memory.GetCell(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})

		It("lifts the tombstone when the cell is marked usable again", func() {
			Expect(memory.MarkUnusable(ctx, cell.OutPoint)).To(Succeed())
			Expect(memory.MarkUsable(ctx, cell)).To(Succeed())

			unusable, err := memory.IsUnusable(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(unusable).To(BeFalse())

			got, err := memory.GetCell(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Eq(cell)).To(BeTrue())
		})

		It("treats unknown out points as not unusable", func() {
			unusable, err := memory.IsUnusable(ctx, ckb.NewOutPoint(ckb.Hash{9}, 9))
			Expect(err).NotTo(HaveOccurred())
			Expect(unusable).To(BeFalse())
		})

		It("keeps spent cells known", func() {
			Expect(memory.MarkUsable(ctx, cell)).To(Succeed())
			Expect(memory.MarkUnusable(ctx, cell.OutPoint)).To(Succeed())

			known, err := memory.GetKnownCell(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(known.Eq(cell)).To(BeTrue())
		})
	})

	It("stores clones", func() {
		Expect(memory.RecordCells(ctx, cell)).To(Succeed())
		cell.OutputData = []byte{0xff}

		got, err := memory.GetCell(ctx, cell.OutPoint)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.OutputData).To(BeEmpty())
	})

	Describe("FindCells", func() {
		var lockA, lockB *ckb.Script

		BeforeEach(func() {
			lockA = lockScript(0xaa)
			lockB = lockScript(0xbb)
			Expect(memory.MarkUsable(ctx,
				newCell(1, 0, lockA),
				newCell(1, 1, lockB),
				newCell(1, 2, lockA, 1, 2, 3),
				newCell(1, 3, lockA),
			)).To(Succeed())
		})

		collect := func(key *cache.SearchKey) []uint32 {
			var indices []uint32
			for c, err := range memory.FindCells(ctx, key) {
				Expect(err).NotTo(HaveOccurred())
				indices = append(indices, c.OutPoint.Index)
			}
			return indices
		}

		It("yields exactly the cells with the lock in insertion order", func() {
			key := &cache.SearchKey{Script: lockA, ScriptType: cache.ScriptTypeLock, ScriptSearchMode: cache.SearchModeExact}
			Expect(collect(key)).To(Equal([]uint32{0, 2, 3}))
		})

		It("is safe to break early", func() {
			key := &cache.SearchKey{Script: lockA, ScriptType: cache.ScriptTypeLock, ScriptSearchMode: cache.SearchModeExact}
			for c := range memory.FindCells(ctx, key) {
				Expect(c.OutPoint.Index).To(Equal(uint32(0)))
				break
			}
			Expect(collect(key)).To(Equal([]uint32{0, 2, 3}))
		})

		It("applies the data filters", func() {
			key := &cache.SearchKey{
				Script:     lockA,
				ScriptType: cache.ScriptTypeLock,
				Filter:     &cache.SearchFilter{OutputDataLenRange: &cache.Range{Start: 0, End: 1}},
			}
			Expect(collect(key)).To(Equal([]uint32{0, 3}))

			key.Filter = &cache.SearchFilter{OutputData: []byte{1, 2}, OutputDataSearchMode: cache.SearchModePrefix}
			Expect(collect(key)).To(Equal([]uint32{2}))

			key.Filter = &cache.SearchFilter{OutputData: []byte{1, 2}, OutputDataSearchMode: cache.SearchModeExact}
			Expect(collect(key)).To(BeEmpty())
		})

		It("does not see cells spent after the search started", func() {
			key := &cache.SearchKey{Script: lockA, ScriptType: cache.ScriptTypeLock}
			var indices []uint32
			for c, err := range memory.FindCells(ctx, key) {
				Expect(err).NotTo(HaveOccurred())
				indices = append(indices, c.OutPoint.Index)
				Expect(memory.MarkUnusable(ctx, ckb.NewOutPoint(ckb.Hash{1}, 3))).To(Succeed())
			}
			Expect(indices).To(Equal([]uint32{0, 2, 3}))
			Expect(collect(key)).To(Equal([]uint32{0, 2}))
		})
	})

	Describe("transactions", func() {
		var tx *ckb.Transaction

		BeforeEach(func() {
			Expect(memory.MarkUsable(ctx, cell)).To(Succeed())
			tx = ckb.NewTransaction()
			tx.AddInput(cell.CellInput())
			tx.AddOutput(&ckb.CellOutput{Capacity: 99 * ckb.ShannonsPerByte, Lock: lockScript(2)}, []byte{7})
		})

		It("marks inputs unusable and outputs usable", func() {
			Expect(memory.MarkTransactions(ctx, tx)).To(Succeed())

			unusable, err := memory.IsUnusable(ctx, cell.OutPoint)
			Expect(err).NotTo(HaveOccurred())
			Expect(unusable).To(BeTrue())

			created, err := memory.GetCell(ctx, ckb.NewOutPoint(tx.Hash(), 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(created.OutputData).To(Equal([]byte{7}))

			recorded, err := memory.GetTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(recorded.Eq(tx)).To(BeTrue())
		})

		It("returns nil for unknown transactions", func() {
			recorded, err := memory.GetTransaction(ctx, ckb.Hash{0xee})
			Expect(err).NotTo(HaveOccurred())
			Expect(recorded).To(BeNil())
		})
	})
})
