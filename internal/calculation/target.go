package calculation

import (
	"math"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// Target is the balance a scenario must reach at its horizon, together with
// the annual return the growth model should use for the chosen basis.
type Target struct {
	FutureSpending float64
	Balance        float64
	MathReturn     float64
}

// ResolveTarget computes the target balance at the horizon. On the nominal
// basis spending is inflated to the horizon and the nominal return is used
// as is; on the real basis spending stays in today's dollars and the return
// is deflated. Balance is NaN when swr <= 0.
func ResolveTarget(spending, inflation float64, years int, swr float64, basis domain.ValuationBasis, expectedNominal float64) Target {
	t := Target{}
	switch basis {
	case domain.Real:
		t.FutureSpending = spending
		t.MathReturn = RealReturn(expectedNominal, inflation)
	default:
		t.FutureSpending = spending * math.Pow(1+inflation, float64(years))
		t.MathReturn = expectedNominal
	}
	if swr > 0 {
		t.Balance = t.FutureSpending / swr
	} else {
		t.Balance = math.NaN()
	}
	return t
}
