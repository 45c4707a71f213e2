package ckb_test

import (
	"ccc/pkg/ckb"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Like conversions", func() {
	var lockLike ckb.ScriptLike

	BeforeEach(func() {
		lockLike = ckb.ScriptLike{
			CodeHash: "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8",
			HashType: "type",
			Args:     "0x0011223344556677889900112233445566778899",
		}
	})

	It("builds a script", func() {
		script, err := ckb.ScriptFrom(lockLike)
		Expect(err).NotTo(HaveOccurred())
		Expect(script.HashType).To(Equal(ckb.HashTypeType))
		Expect(script.Args).To(HaveLen(20))
	})

	It("rejects malformed scripts", func() {
		lockLike.Args = "0x123"
		_, err := ckb.ScriptFrom(lockLike)
		Expect(err).To(HaveOccurred())

		lockLike.Args = "0x"
		lockLike.HashType = "data3"
		_, err = ckb.ScriptFrom(lockLike)
		Expect(err).To(HaveOccurred())
	})

	It("defaults an output's capacity to its minimum", func() {
		out, err := ckb.CellOutputFrom(ckb.CellOutputLike{Lock: lockLike})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Capacity).To(Equal(uint64(61 * ckb.ShannonsPerByte)))

		out, err = ckb.CellOutputFrom(ckb.CellOutputLike{Capacity: "100.5", Lock: lockLike})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Capacity).To(Equal(uint64(10050000000)))

		_, err = ckb.CellOutputFrom(ckb.CellOutputLike{Capacity: "-1", Lock: lockLike})
		Expect(err).To(HaveOccurred())
	})

	It("builds a transaction with aligned outputs data", func() {
		tx, err := ckb.TransactionFrom(ckb.TransactionLike{
			CellDeps: []ckb.CellDepLike{{
				OutPoint: ckb.OutPointLike{TxHash: lockLike.CodeHash},
				DepType:  "depGroup",
			}},
			Outputs:     []ckb.CellOutputLike{{Lock: lockLike}, {Lock: lockLike}},
			OutputsData: []string{"0x1234"},
			Witnesses:   []string{"0x"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.OutputsData).To(Equal([][]byte{{0x12, 0x34}, {}}))
		Expect(tx.CellDeps[0].DepType).To(Equal(ckb.DepTypeDepGroup))
		Expect(tx.Witnesses).To(Equal([][]byte{{}}))
	})

	It("rejects more outputs data than outputs", func() {
		_, err := ckb.TransactionFrom(ckb.TransactionLike{OutputsData: []string{"0x"}})
		Expect(err).To(MatchError(ckb.ErrInvalidLength))
	})
})
