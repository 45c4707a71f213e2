// Package fixedpoint converts between decimal strings and integers scaled by 10^decimals.
package fixedpoint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// DefaultDecimals is the scale of CKB capacities (1 CKB = 10^8 shannons).
const DefaultDecimals = 8

var ErrInvalidFixedPoint = errors.New("invalid fixed point value")

var (
	Zero = big.NewInt(0)
	One  = FromUint(1, DefaultDecimals)
)

func scale(decimals int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// FromUint scales an integer amount by 10^decimals.
func FromUint(v uint64, decimals int) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(v), scale(decimals))
}

// From parses a decimal string such as "10.101" into its scaled integer.
func From(s string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, fmt.Errorf("%w: negative decimals %d", ErrInvalidFixedPoint, decimals)
	}

	str := strings.TrimSpace(s)
	negative := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")

	whole, frac, hasDot := strings.Cut(str, ".")
	if whole == "" && (!hasDot || frac == "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFixedPoint, s)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidFixedPoint, s, decimals)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFixedPoint, s)
	}

	digits := strings.TrimLeft(whole+frac+strings.Repeat("0", decimals-len(frac)), "0")
	if digits == "" {
		digits = "0"
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFixedPoint, s)
	}

	if negative {
		v.Neg(v)
	}
	return v, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ToString renders a scaled integer as a decimal string, stripping trailing
// fractional zeros and the dot when nothing remains after it.
func ToString(v *big.Int, decimals int) string {
	if v == nil {
		return "0"
	}

	abs := new(big.Int).Abs(v)
	whole, frac := new(big.Int).QuoRem(abs, scale(decimals), new(big.Int))

	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}

	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := frac.String()
	fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	return sign + whole.String() + "." + fracStr
}
