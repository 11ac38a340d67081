package calculation

import "github.com/rpgo/coastfi-calculator/internal/domain"

// Project evaluates FutureValue at every whole year from 0 to horizonYears
// inclusive. A negative horizon yields an empty series.
func Project(presentValue, annualRate float64, horizonYears int, plan *domain.ContributionPlan) []domain.ProjectionPoint {
	if horizonYears < 0 {
		return []domain.ProjectionPoint{}
	}
	points := make([]domain.ProjectionPoint, 0, horizonYears+1)
	for y := 0; y <= horizonYears; y++ {
		points = append(points, domain.ProjectionPoint{
			Year:    y,
			Balance: FutureValue(presentValue, annualRate, float64(y), plan),
		})
	}
	return points
}
