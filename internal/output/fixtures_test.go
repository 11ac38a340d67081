package output

import (
	"math"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

func onTrackEvaluation() domain.Evaluation {
	return domain.Evaluation{
		Name: "Coast (nominal)",
		Inputs: domain.ScenarioInputs{
			CurrentSpending:       40000,
			InflationRate:         0.03,
			YearsUntilTarget:      2,
			CurrentPortfolio:      1000000,
			ExpectedReturnNominal: 0.06,
			SafeWithdrawalRate:    0.04,
			Basis:                 domain.Nominal,
		},
		Contribution:   domain.ContributionPlan{Enabled: true, Amount: 500, Frequency: domain.Monthly, Timing: domain.EndOfPeriod},
		Mode:           domain.RequiredReturn,
		FutureSpending: 42436,
		TargetBalance:  1060900,
		MathReturn:     0.06,
		EndingBalance:  1136400,
		Gap:            -75500,
		RequiredReturn: 0.0212,
		RequiredYears:  1.1,
		YearsDelta:     -0.9,
		Projection: []domain.ProjectionPoint{
			{Year: 0, Balance: 1000000},
			{Year: 1, Balance: 1066168},
			{Year: 2, Balance: 1136400},
		},
	}
}

func shortEvaluation() domain.Evaluation {
	return domain.Evaluation{
		Name: "Late start",
		Inputs: domain.ScenarioInputs{
			CurrentSpending:       60000,
			InflationRate:         0.03,
			YearsUntilTarget:      0,
			CurrentPortfolio:      250000,
			ExpectedReturnNominal: 0.05,
			SafeWithdrawalRate:    0.04,
			Basis:                 domain.Real,
		},
		Mode:           domain.EndingBalance,
		FutureSpending: 60000,
		TargetBalance:  1500000,
		MathReturn:     0.0194,
		EndingBalance:  250000,
		Gap:            1250000,
		RequiredReturn: math.NaN(),
		RequiredYears:  math.NaN(),
		YearsDelta:     math.NaN(),
	}
}

func buildTestComparison() *domain.Comparison {
	return &domain.Comparison{
		Results:     []domain.Evaluation{onTrackEvaluation(), shortEvaluation()},
		Assumptions: []string{"Returns compound annually at a constant rate"},
	}
}
