package ckb_test

import (
	"ccc/pkg/ckb"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HashType", func() {
	DescribeTable("maps to its fixed byte code and back",
		func(h ckb.HashType, code byte) {
			b, err := h.Byte()
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(Equal(code))

			decoded, err := ckb.HashTypeFromByte(code)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(h))

			parsed, err := ckb.HashTypeFrom(string(h))
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(h))
		},
		Entry("data", ckb.HashTypeData, byte(0x00)),
		Entry("type", ckb.HashTypeType, byte(0x01)),
		Entry("data1", ckb.HashTypeData1, byte(0x02)),
		Entry("data2", ckb.HashTypeData2, byte(0x04)),
	)

	It("rejects undefined byte codes", func() {
		for _, code := range []byte{0x03, 0x05, 0xff} {
			_, err := ckb.HashTypeFromByte(code)
			Expect(err).To(MatchError(ckb.ErrUnknownHashType))
		}
	})

	It("rejects unknown names", func() {
		_, err := ckb.HashTypeFrom("data3")
		Expect(err).To(MatchError(ckb.ErrUnknownHashType))

		var h ckb.HashType
		Expect(json.Unmarshal([]byte(`"Type"`), &h)).To(MatchError(ckb.ErrUnknownHashType))
	})
})

var _ = Describe("DepType", func() {
	It("accepts the wire and camel case names", func() {
		d, err := ckb.DepTypeFrom("depGroup")
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(ckb.DepTypeDepGroup))

		b, err := d.Byte()
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(byte(1)))

		_, err = ckb.DepTypeFromByte(2)
		Expect(err).To(MatchError(ckb.ErrUnknownDepType))
	})
})
