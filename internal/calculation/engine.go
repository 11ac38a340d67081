package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many scenarios RunScenarios evaluates at once.
const DefaultConcurrency = 8

// CalculationEngine orchestrates the target, growth, solver and projection
// steps for whole scenarios. It holds no per-request state and is safe for
// concurrent use.
type CalculationEngine struct {
	Concurrency int
	Logger      Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Concurrency: DefaultConcurrency,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Evaluate runs one scenario through the engine. The three derived
// quantities are always computed; mode only records which one the caller
// treats as primary.
func (ce *CalculationEngine) Evaluate(inputs domain.ScenarioInputs, plan domain.ContributionPlan, mode domain.SolveMode) domain.Evaluation {
	target := ResolveTarget(inputs.CurrentSpending, inputs.InflationRate, inputs.YearsUntilTarget,
		inputs.SafeWithdrawalRate, inputs.Basis, inputs.ExpectedReturnNominal)
	years := float64(inputs.YearsUntilTarget)

	ev := domain.Evaluation{
		Inputs:         inputs,
		Contribution:   plan,
		Mode:           mode,
		FutureSpending: target.FutureSpending,
		TargetBalance:  target.Balance,
		MathReturn:     target.MathReturn,
		EndingBalance:  FutureValue(inputs.CurrentPortfolio, target.MathReturn, years, &plan),
		RequiredReturn: math.NaN(),
		YearsDelta:     math.NaN(),
	}
	ev.Gap = target.Balance - ev.EndingBalance

	if inputs.YearsUntilTarget > 0 {
		ev.RequiredReturn = SolveRequiredReturn(target.Balance, inputs.CurrentPortfolio, years, &plan)
	}
	ev.RequiredYears = SolveYearsNeeded(target.Balance, inputs.CurrentPortfolio, target.MathReturn, &plan)
	if inputs.YearsUntilTarget > 0 && !math.IsNaN(ev.RequiredYears) {
		ev.YearsDelta = ev.RequiredYears - years
	}

	if inputs.YearsUntilTarget > 0 && inputs.CurrentPortfolio > 0 {
		ev.Projection = Project(inputs.CurrentPortfolio, target.MathReturn, inputs.YearsUntilTarget, &plan)
	}

	if math.IsNaN(ev.TargetBalance) {
		ce.Logger.Debugf("target undefined (swr=%.4f)", inputs.SafeWithdrawalRate)
	}
	if math.IsNaN(ev.RequiredReturn) {
		ce.Logger.Debugf("required return undefined for target=%.2f pv=%.2f years=%d", ev.TargetBalance, inputs.CurrentPortfolio, inputs.YearsUntilTarget)
	}
	if math.IsNaN(ev.RequiredYears) {
		ce.Logger.Debugf("years needed undefined for target=%.2f pv=%.2f rate=%.4f", ev.TargetBalance, inputs.CurrentPortfolio, target.MathReturn)
	}
	return ev
}

// EvaluateScenario evaluates a named scenario from a configuration file.
func (ce *CalculationEngine) EvaluateScenario(sc domain.Scenario) domain.Evaluation {
	ev := ce.Evaluate(sc.Inputs, sc.Contribution, sc.Mode)
	ev.Name = sc.Name
	return ev
}

// RunScenarios evaluates every scenario of config concurrently. Results keep
// the order of config.Scenarios.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.Comparison, error) {
	if config == nil {
		return nil, fmt.Errorf("nil configuration")
	}
	results := make([]domain.Evaluation, len(config.Scenarios))

	g, gctx := errgroup.WithContext(ctx)
	limit := ce.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g.SetLimit(limit)
	for i, sc := range config.Scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results[i] = ce.EvaluateScenario(sc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	ce.Logger.Infof("evaluated %d scenarios", len(results))

	return &domain.Comparison{
		Results:     results,
		Assumptions: GenerateAssumptions(config),
	}, nil
}

// GenerateAssumptions lists the modeling assumptions behind a run.
func GenerateAssumptions(config *domain.Configuration) []string {
	assumptions := []string{
		"Returns compound deterministically at a constant annual rate",
		"Monthly contributions use the effective monthly rate (1+r)^(1/12)-1",
		"Target balance = spending at the horizon / safe withdrawal rate",
		"Real basis: spending stays in today's dollars and returns are deflated by inflation",
	}
	if config == nil {
		return assumptions
	}
	for _, sc := range config.Scenarios {
		in := sc.Inputs
		assumptions = append(assumptions, fmt.Sprintf("%s: %.1f%% inflation, %.1f%% nominal return, %.2f%% SWR, %s basis",
			sc.Name, in.InflationRate*100, in.ExpectedReturnNominal*100, in.SafeWithdrawalRate*100, in.Basis))
	}
	return assumptions
}
