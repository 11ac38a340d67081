package calculation

import (
	"math"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// MinGrowthRate is the wipeout bound; at or below it geometric growth is
// meaningless and FutureValue returns NaN.
const MinGrowthRate = -0.999999999

// FutureValue projects presentValue forward by years at annualRate, adding
// the contribution stream when plan is active. years may be fractional; with
// an active plan it is rounded to whole contribution periods first.
// Returns NaN for years < 0 or annualRate <= MinGrowthRate.
func FutureValue(presentValue, annualRate, years float64, plan *domain.ContributionPlan) float64 {
	if math.IsNaN(presentValue) || math.IsNaN(annualRate) || math.IsNaN(years) {
		return math.NaN()
	}
	if years < 0 || annualRate <= MinGrowthRate {
		return math.NaN()
	}
	if !plan.Active() {
		return presentValue * math.Pow(1+annualRate, years)
	}

	perYear := plan.Frequency.PeriodsPerYear()
	periods := int(math.RoundToEven(years * float64(perYear)))
	periodRate := EffectivePeriodRate(annualRate, perYear)

	growth := math.Pow(1+periodRate, float64(periods))
	lumpSum := presentValue * growth
	return lumpSum + plan.Amount*annuityFactor(periodRate, periods, plan.Timing)
}

// annuityFactor is the future value of one unit deposited every period for
// periods periods. Beginning-of-period deposits earn one extra period.
// At a zero rate the factor is its limit, the number of periods.
func annuityFactor(periodRate float64, periods int, timing domain.Timing) float64 {
	if periods <= 0 {
		return 0
	}
	if periodRate == 0 {
		return float64(periods)
	}
	factor := (math.Pow(1+periodRate, float64(periods)) - 1) / periodRate
	if timing == domain.BeginningOfPeriod {
		factor *= 1 + periodRate
	}
	return factor
}
