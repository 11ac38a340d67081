package domain

import (
	"encoding/json"
	"math"
)

// ProjectionPoint is the portfolio balance at the end of a whole year.
type ProjectionPoint struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

func (p ProjectionPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Year    int      `json:"year"`
		Balance *float64 `json:"balance"`
	}{p.Year, Nullable(p.Balance)})
}

// Evaluation is the output contract of one scenario evaluation. Any float
// field may be NaN, meaning the quantity is undefined for the given inputs;
// callers must check with math.IsNaN before formatting.
type Evaluation struct {
	Name         string           `json:"name"`
	Inputs       ScenarioInputs   `json:"inputs"`
	Contribution ContributionPlan `json:"contribution"`
	Mode         SolveMode        `json:"solve_for"`

	FutureSpending float64 `json:"future_spending"`
	TargetBalance  float64 `json:"target_balance"`
	MathReturn     float64 `json:"math_return"`
	EndingBalance  float64 `json:"ending_balance"`
	Gap            float64 `json:"gap"` // target minus ending balance
	RequiredReturn float64 `json:"required_return"`
	RequiredYears  float64 `json:"required_years"`
	YearsDelta     float64 `json:"years_delta"` // required years minus horizon

	Projection []ProjectionPoint `json:"projection,omitempty"`
}

// OnTrack reports whether the ending balance meets the target. An undefined
// target is never on track.
func (e *Evaluation) OnTrack() bool {
	return !math.IsNaN(e.Gap) && e.Gap <= 0
}

func (e Evaluation) MarshalJSON() ([]byte, error) {
	type view struct {
		Name           string            `json:"name"`
		Inputs         ScenarioInputs    `json:"inputs"`
		Contribution   ContributionPlan  `json:"contribution"`
		Mode           SolveMode         `json:"solve_for"`
		FutureSpending *float64          `json:"future_spending"`
		TargetBalance  *float64          `json:"target_balance"`
		MathReturn     *float64          `json:"math_return"`
		EndingBalance  *float64          `json:"ending_balance"`
		Gap            *float64          `json:"gap"`
		RequiredReturn *float64          `json:"required_return"`
		RequiredYears  *float64          `json:"required_years"`
		YearsDelta     *float64          `json:"years_delta"`
		OnTrack        bool              `json:"on_track"`
		Projection     []ProjectionPoint `json:"projection,omitempty"`
	}
	return json.Marshal(view{
		Name:           e.Name,
		Inputs:         e.Inputs,
		Contribution:   e.Contribution,
		Mode:           e.Mode,
		FutureSpending: Nullable(e.FutureSpending),
		TargetBalance:  Nullable(e.TargetBalance),
		MathReturn:     Nullable(e.MathReturn),
		EndingBalance:  Nullable(e.EndingBalance),
		Gap:            Nullable(e.Gap),
		RequiredReturn: Nullable(e.RequiredReturn),
		RequiredYears:  Nullable(e.RequiredYears),
		YearsDelta:     Nullable(e.YearsDelta),
		OnTrack:        e.OnTrack(),
		Projection:     e.Projection,
	})
}

// Comparison holds the evaluations of a scenario file in file order.
type Comparison struct {
	Results     []Evaluation `json:"results"`
	Assumptions []string     `json:"assumptions"`
}

// Nullable maps undefined (NaN or infinite) values to JSON null.
func Nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
