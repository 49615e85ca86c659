package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupeeSymbol = "₹"

var hundred = decimal.NewFromInt(100)

// FormatINR renders amount in whole rupees with Indian digit grouping,
// e.g. 420000 -> "₹4,20,000". Fractions are rounded half away from zero.
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	neg := rounded.IsNegative()
	s := rounded.Abs().String()

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 4)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(rupeeSymbol)

	if len(s) <= 3 {
		b.WriteString(s)
		return b.String()
	}

	// Last three digits form one group, everything before it is grouped in pairs.
	head, tail := s[:len(s)-3], s[len(s)-3:]
	rem := len(head) % 2
	if rem == 0 {
		rem = 2
	}
	b.WriteString(head[:rem])
	for i := rem; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)

	return b.String()
}

// SavingsRatio returns the unrounded percentage saved by paying pooled instead of retail.
func SavingsRatio(retail, pooled decimal.Decimal) (decimal.Decimal, error) {
	if !retail.IsPositive() {
		return decimal.Zero, ErrNonPositiveRetail
	}
	return retail.Sub(pooled).Div(retail).Mul(hundred), nil
}

// SavingsPercent is SavingsRatio rounded to a whole percent.
func SavingsPercent(retail, pooled decimal.Decimal) (int, error) {
	ratio, err := SavingsRatio(retail, pooled)
	if err != nil {
		return 0, err
	}
	return int(ratio.Round(0).IntPart()), nil
}

// Percent returns round(part/whole*100). It is not capped at 100.
func Percent(part, whole int) (int, error) {
	if whole <= 0 {
		return 0, ErrNonPositiveWhole
	}
	ratio := decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(whole))).Mul(hundred)
	return int(ratio.Round(0).IntPart()), nil
}

// LineTotal is unit price times quantity.
func LineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}
