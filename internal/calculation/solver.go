package calculation

import (
	"math"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// Bisection parameters shared by both solvers.
const (
	SolverMaxIterations = 80

	MinSearchReturn = -0.99
	MaxSearchReturn = 1.0
	ReturnTolerance = 1e-6

	MaxSearchYears = 80.0
	YearsTolerance = 1e-2
)

// SolveRequiredReturn finds the annual return at which presentValue (plus
// the plan's contributions) grows to target in exactly years. The search is
// bounded to [-99%, +100%]; when the target is not bracketed by that range,
// or the inputs are not all positive, the result is NaN.
func SolveRequiredReturn(target, presentValue, years float64, plan *domain.ContributionPlan) float64 {
	if !(presentValue > 0) || !(years > 0) || !(target > 0) {
		return math.NaN()
	}
	f := func(r float64) float64 {
		return FutureValue(presentValue, r, years, plan) - target
	}

	lo, hi := MinSearchReturn, MaxSearchReturn
	fLo, fHi := f(lo), f(hi)
	if math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0 {
		return math.NaN()
	}
	for i := 0; i < SolverMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := f(mid)
		if math.Abs(fMid) < ReturnTolerance {
			return mid
		}
		if fLo*fMid <= 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2
}

// SolveYearsNeeded finds how many years it takes presentValue (plus the
// plan's contributions) to reach target at annualRate. It returns 0 when the
// target is already met and NaN when it is out of reach within 80 years or
// the inputs are out of domain.
func SolveYearsNeeded(target, presentValue, annualRate float64, plan *domain.ContributionPlan) float64 {
	if !(presentValue > 0) || !(annualRate > MinGrowthRate) || !(target > 0) {
		return math.NaN()
	}
	f := func(y float64) float64 {
		return FutureValue(presentValue, annualRate, y, plan) - target
	}

	lo, hi := 0.0, MaxSearchYears
	fLo, fHi := f(lo), f(hi)
	if math.IsNaN(fLo) || math.IsNaN(fHi) {
		return math.NaN()
	}
	if fLo >= 0 {
		return 0
	}
	if fHi < 0 {
		return math.NaN()
	}
	for i := 0; i < SolverMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := f(mid)
		if math.Abs(fMid) < YearsTolerance {
			return mid
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
