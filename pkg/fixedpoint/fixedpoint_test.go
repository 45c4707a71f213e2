package fixedpoint_test

import (
	"ccc/pkg/fixedpoint"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FixedPoint", func() {
	DescribeTable("round trips with 8 decimals",
		func(v int64, s string) {
			Expect(fixedpoint.ToString(big.NewInt(v), 8)).To(Equal(s))

			parsed, err := fixedpoint.From(s, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Int64()).To(Equal(v))
		},
		Entry("zero", int64(0), "0"),
		Entry("one shannon", int64(1), "0.00000001"),
		Entry("one unit", int64(100000000), "1"),
		Entry("trailing zeros stripped", int64(1010100000), "10.101"),
		Entry("negative", int64(-150000000), "-1.5"),
	)

	It("round trips other scales", func() {
		for _, d := range []int{0, 1, 6, 18} {
			v := big.NewInt(123456789)
			parsed, err := fixedpoint.From(fixedpoint.ToString(v, d), d)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(v))
		}
	})

	It("accepts shorthand forms", func() {
		v, err := fixedpoint.From(".5", 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Int64()).To(Equal(int64(50000000)))

		v, err = fixedpoint.From("61", 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(fixedpoint.FromUint(61, 8)))
	})

	It("rejects malformed input", func() {
		for _, s := range []string{"", ".", "1.2.3", "abc", "1e8", "0.000000001"} {
			_, err := fixedpoint.From(s, 8)
			Expect(err).To(MatchError(fixedpoint.ErrInvalidFixedPoint), s)
		}
	})

	It("exposes one unit", func() {
		Expect(fixedpoint.One.Int64()).To(Equal(int64(100000000)))
	})
})
