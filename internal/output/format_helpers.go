package output

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	money "github.com/rpgo/coastfi-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Undefined is printed in place of a value the engine could not determine.
const Undefined = "n/a"

// FormatCurrency formats an amount as whole US dollars, e.g. "$4,291,871".
func FormatCurrency(amount float64) string {
	m, ok := money.FromFloat(amount)
	if !ok {
		return Undefined
	}
	return m.FormatWhole()
}

// FormatPercentage formats a rate given as a fraction (0.0612) as "6.12%".
func FormatPercentage(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Undefined
	}
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatYears formats a year count with one decimal place.
func FormatYears(years float64) string {
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return Undefined
	}
	return strconv.FormatFloat(years, 'f', 1, 64) + " years"
}

// ContributionCaption describes an active contribution plan, or returns ""
// when the plan contributes nothing.
func ContributionCaption(plan domain.ContributionPlan) string {
	if !plan.Active() {
		return ""
	}
	return fmt.Sprintf("Including contributions of %s %s (%s).",
		FormatCurrency(plan.Amount), plan.Frequency, plan.Timing.Label())
}

// csvAmount renders a balance with cents, or an empty cell when undefined.
func csvAmount(v float64) string {
	m, ok := money.FromFloat(v)
	if !ok {
		return ""
	}
	return m.Round().String()
}

// csvFloat renders v with the given precision, or an empty cell when undefined.
func csvFloat(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
