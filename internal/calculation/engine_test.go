package calculation

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultInputs() domain.ScenarioInputs {
	return domain.ScenarioInputs{
		CurrentSpending:       100_000,
		InflationRate:         0.025,
		YearsUntilTarget:      25,
		CurrentPortfolio:      1_000_000,
		ExpectedReturnNominal: 0.06,
		SafeWithdrawalRate:    0.04,
		Basis:                 domain.Nominal,
	}
}

type recordingLogger struct {
	NopLogger
	debug []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}

func TestResolveTarget_Nominal(t *testing.T) {
	tgt := ResolveTarget(100_000, 0.025, 25, 0.04, domain.Nominal, 0.06)
	assert.InDelta(t, 185_394.41, tgt.FutureSpending, 0.01)
	assert.InDelta(t, tgt.FutureSpending/0.04, tgt.Balance, 1e-6)
	assert.Equal(t, 0.06, tgt.MathReturn)
}

func TestResolveTarget_Real(t *testing.T) {
	tgt := ResolveTarget(100_000, 0.025, 25, 0.04, domain.Real, 0.06)
	assert.Equal(t, 100_000.0, tgt.FutureSpending)
	assert.InDelta(t, 2_500_000.0, tgt.Balance, 1e-6)
	assert.InDelta(t, RealReturn(0.06, 0.025), tgt.MathReturn, 1e-15)
}

func TestResolveTarget_ZeroSWRIsUndefined(t *testing.T) {
	for _, swr := range []float64{0, -0.01} {
		tgt := ResolveTarget(100_000, 0.025, 25, swr, domain.Nominal, 0.06)
		assert.True(t, math.IsNaN(tgt.Balance))
		assert.True(t, math.IsNaN(SolveRequiredReturn(tgt.Balance, 1_000_000, 25, nil)))
		assert.True(t, math.IsNaN(SolveYearsNeeded(tgt.Balance, 1_000_000, 0.06, nil)))
	}
}

func TestEvaluate_DefaultScenario(t *testing.T) {
	engine := NewCalculationEngine()
	ev := engine.Evaluate(defaultInputs(), domain.ContributionPlan{}, domain.RequiredReturn)

	assert.InDelta(t, 4_634_860.25, ev.TargetBalance, 1.0)
	assert.InDelta(t, 4_291_871.0, ev.EndingBalance, 1.0)
	assert.InDelta(t, ev.TargetBalance-ev.EndingBalance, ev.Gap, 1e-9)
	assert.False(t, ev.OnTrack())

	require.False(t, math.IsNaN(ev.RequiredReturn))
	assert.Greater(t, ev.RequiredReturn, 0.06)
	assert.InEpsilon(t, ev.TargetBalance, FutureValue(1_000_000, ev.RequiredReturn, 25, nil), 1e-5)

	require.False(t, math.IsNaN(ev.RequiredYears))
	assert.Greater(t, ev.RequiredYears, 25.0)
	assert.InDelta(t, ev.RequiredYears-25, ev.YearsDelta, 1e-12)

	require.Len(t, ev.Projection, 26)
	assert.Equal(t, 1_000_000.0, ev.Projection[0].Balance)
	assert.Equal(t, ev.EndingBalance, ev.Projection[25].Balance)
}

func TestEvaluate_ContributionsCloseTheGap(t *testing.T) {
	engine := NewCalculationEngine()
	plan := domain.ContributionPlan{Enabled: true, Amount: 600, Frequency: domain.Monthly}
	base := engine.Evaluate(defaultInputs(), domain.ContributionPlan{}, domain.EndingBalance)
	ev := engine.Evaluate(defaultInputs(), plan, domain.EndingBalance)

	assert.Greater(t, ev.EndingBalance, base.EndingBalance)
	assert.True(t, ev.OnTrack())
	assert.Less(t, ev.RequiredReturn, base.RequiredReturn)
}

func TestEvaluate_RealBasis(t *testing.T) {
	in := defaultInputs()
	in.Basis = domain.Real
	ev := NewCalculationEngine().Evaluate(in, domain.ContributionPlan{}, domain.YearsNeeded)

	assert.InDelta(t, 2_500_000.0, ev.TargetBalance, 1e-6)
	assert.InDelta(t, 0.0341463, ev.MathReturn, 1e-6)
	assert.InDelta(t, 2_314_994.68, ev.EndingBalance, 1.0)
	assert.False(t, ev.OnTrack())
	assert.InDelta(t, 2.29, ev.YearsDelta, 0.01)
}

func TestEvaluate_UndefinedTargetPropagates(t *testing.T) {
	in := defaultInputs()
	in.SafeWithdrawalRate = 0
	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	ev := engine.Evaluate(in, domain.ContributionPlan{}, domain.RequiredReturn)
	assert.True(t, math.IsNaN(ev.TargetBalance))
	assert.True(t, math.IsNaN(ev.Gap))
	assert.True(t, math.IsNaN(ev.RequiredReturn))
	assert.True(t, math.IsNaN(ev.RequiredYears))
	assert.True(t, math.IsNaN(ev.YearsDelta))
	assert.False(t, ev.OnTrack())
	assert.False(t, math.IsNaN(ev.EndingBalance))
	assert.NotEmpty(t, logger.debug)
}

func TestEvaluate_ZeroHorizon(t *testing.T) {
	in := defaultInputs()
	in.YearsUntilTarget = 0
	ev := NewCalculationEngine().Evaluate(in, domain.ContributionPlan{}, domain.RequiredReturn)

	assert.Equal(t, 1_000_000.0, ev.EndingBalance)
	assert.InDelta(t, 2_500_000.0, ev.TargetBalance, 1e-6)
	assert.True(t, math.IsNaN(ev.RequiredReturn))
	assert.True(t, math.IsNaN(ev.YearsDelta))
	assert.False(t, math.IsNaN(ev.RequiredYears))
	assert.Empty(t, ev.Projection)
}

func TestSetLogger_NilResetsToNop(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.Equal(t, NopLogger{}, engine.Logger)
}

func TestRunScenarios_PreservesOrder(t *testing.T) {
	cfg := &domain.Configuration{}
	for i := 0; i < 20; i++ {
		in := defaultInputs()
		in.YearsUntilTarget = i + 1
		cfg.Scenarios = append(cfg.Scenarios, domain.Scenario{Name: fmt.Sprintf("s%02d", i), Inputs: in})
	}
	engine := NewCalculationEngine()
	engine.Concurrency = 3

	res, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Results, 20)
	for i, ev := range res.Results {
		assert.Equal(t, fmt.Sprintf("s%02d", i), ev.Name)
		assert.Equal(t, i+1, ev.Inputs.YearsUntilTarget)
	}
	assert.NotEmpty(t, res.Assumptions)
}

func TestRunScenarios_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &domain.Configuration{Scenarios: []domain.Scenario{{Name: "a", Inputs: defaultInputs()}}}

	_, err := NewCalculationEngine().RunScenarios(ctx, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenarios_NilConfig(t *testing.T) {
	_, err := NewCalculationEngine().RunScenarios(context.Background(), nil)
	assert.Error(t, err)
}
