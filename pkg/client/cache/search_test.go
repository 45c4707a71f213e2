package cache_test

import (
	"encoding/json"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SearchKey", func() {
	var (
		lock *ckb.Script
		udt  *ckb.Script
		cell *ckb.Cell
	)

	BeforeEach(func() {
		lock = lockScript(1, 2, 3, 4)
		udt = lockScript(9)
		udt.CodeHash = ckb.Hash{0x55}
		cell = newCell(1, 0, lock, 5, 6, 7)
		cell.CellOutput.Type = udt
	})

	DescribeTable("script search modes",
		func(args []byte, mode cache.SearchMode, expected bool) {
			key := &cache.SearchKey{Script: lockScript(args...), ScriptType: cache.ScriptTypeLock, ScriptSearchMode: mode}
			Expect(key.Match(cell)).To(Equal(expected))
		},
		Entry("exact", []byte{1, 2, 3, 4}, cache.SearchModeExact, true),
		Entry("exact rejects a prefix", []byte{1, 2}, cache.SearchModeExact, false),
		Entry("prefix", []byte{1, 2}, cache.SearchModePrefix, true),
		Entry("partial", []byte{2, 3}, cache.SearchModePartial, true),
		Entry("prefix rejects an infix", []byte{2, 3}, cache.SearchModePrefix, false),
	)

	It("searches by type script and filters by lock", func() {
		key := &cache.SearchKey{
			Script:     udt,
			ScriptType: cache.ScriptTypeType,
			Filter:     &cache.SearchFilter{Script: lockScript(1)},
		}
		Expect(key.Match(cell)).To(BeTrue())

		key.Filter.Script = lockScript(2)
		Expect(key.Match(cell)).To(BeFalse())
	})

	It("uses half-open ranges", func() {
		key := &cache.SearchKey{Script: lock, ScriptType: cache.ScriptTypeLock, Filter: &cache.SearchFilter{
			OutputCapacityRange: &cache.Range{Start: 0, End: 100 * ckb.ShannonsPerByte},
		}}
		Expect(key.Match(cell)).To(BeFalse())

		key.Filter.OutputCapacityRange.End++
		Expect(key.Match(cell)).To(BeTrue())

		key.Filter.ScriptLenRange = &cache.Range{Start: 0, End: 1}
		Expect(key.Match(cell)).To(BeFalse())
	})

	It("serializes in the indexer layout", func() {
		key := &cache.SearchKey{
			Script:           lock,
			ScriptType:       cache.ScriptTypeLock,
			ScriptSearchMode: cache.SearchModeExact,
			Filter:           &cache.SearchFilter{OutputDataLenRange: &cache.Range{Start: 0, End: 1}},
			WithData:         true,
		}
		b, err := json.Marshal(key)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`"script_type":"lock"`))
		Expect(string(b)).To(ContainSubstring(`"output_data_len_range":["0x0","0x1"]`))
		Expect(string(b)).To(ContainSubstring(`"with_data":true`))
	})
})
