package ckb_test

import (
	"context"

	"ccc/pkg/ckb"

	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UDT balance", func() {
	It("reads the little-endian amount at the start of the data", func() {
		data := make([]byte, 20)
		data[0] = 0x10
		data[1] = 0x27
		Expect(ckb.UdtBalanceFrom(data).Uint64()).To(Equal(uint64(10000)))
		Expect(ckb.UdtBalanceFrom([]byte{1, 2}).IsZero()).To(BeTrue())
	})

	It("writes the amount and keeps the rest", func() {
		data, err := ckb.UdtBalanceToData(uint256.NewInt(10000), []byte{0xee})
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveLen(17))
		Expect(data[:2]).To(Equal([]byte{0x10, 0x27}))
		Expect(data[16]).To(Equal(byte(0xee)))
	})

	It("rejects amounts above u128", func() {
		tooBig := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
		_, err := ckb.UdtBalanceToData(tooBig, nil)
		Expect(err).To(MatchError(ckb.ErrUdtBalanceOverflow))
	})

	It("sums inputs and outputs of one type", func() {
		ctx := context.Background()
		lock := testScript("0x01", 1)
		udt := testScript("0x02", 2)
		other := testScript("0x02", 3)
		resolver := mapResolver{}

		tx := ckb.NewTransaction()
		for i, typ := range []*ckb.Script{udt, other, udt} {
			cell := testCell("0x03", uint32(i), 142*ckb.ShannonsPerByte, lock)
			cell.CellOutput.Type = typ
			cell.OutputData, _ = ckb.UdtBalanceToData(uint256.NewInt(uint64(100*(i+1))), nil)
			resolver.add(cell)
			tx.AddInput(&ckb.CellInput{PreviousOutput: cell.OutPoint.Clone()})

			tx.AddOutput(&ckb.CellOutput{Capacity: 142 * ckb.ShannonsPerByte, Lock: lock, Type: typ}, cell.OutputData)
		}

		in, err := tx.GetInputsUdtBalance(ctx, udt, resolver)
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Uint64()).To(Equal(uint64(400)))
		Expect(tx.GetOutputsUdtBalance(udt).Uint64()).To(Equal(uint64(400)))
		Expect(tx.GetOutputsUdtBalance(other).Uint64()).To(Equal(uint64(200)))
	})
})
