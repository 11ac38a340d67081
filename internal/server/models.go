package server

import "github.com/rpgo/coastfi-calculator/internal/domain"

// EvaluateRequest is the body of POST /evaluate, /project and /chart.png.
type EvaluateRequest struct {
	Name         string                  `json:"name"`
	Inputs       domain.ScenarioInputs   `json:"inputs"`
	Contribution domain.ContributionPlan `json:"contribution"`
	SolveFor     domain.SolveMode        `json:"solve_for"`
}

func (r EvaluateRequest) scenario() domain.Scenario {
	return domain.Scenario{
		Name:         r.Name,
		Inputs:       r.Inputs,
		Contribution: r.Contribution,
		Mode:         r.SolveFor,
	}
}

// EvaluateResponse wraps an evaluation with its rendered result lines.
type EvaluateResponse struct {
	Evaluation domain.Evaluation `json:"evaluation"`
	Status     string            `json:"status"`
	Lines      []string          `json:"lines"`
}

// ProjectResponse is the body returned by POST /project.
type ProjectResponse struct {
	Name          string                   `json:"name"`
	TargetBalance *float64                 `json:"target_balance"`
	Projection    []domain.ProjectionPoint `json:"projection"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
