package decimal

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// Callers must not pass NaN or Inf; use FromFloat for engine outputs.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromFloat converts an engine value, reporting false when the value is
// undefined (NaN) or infinite.
func FromFloat(value float64) (Money, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, false
	}
	return NewMoney(value), true
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// FormatWhole formats the amount rounded to whole dollars, e.g. "$4,291,871".
func (m Money) FormatWhole() string {
	whole := m.Decimal.Round(0)
	return sign(whole) + "$" + humanize.BigComma(whole.Abs().BigInt())
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}
