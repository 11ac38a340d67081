package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/rpgo/coastfi-calculator/internal/config"
	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// scenarioFlags holds a single scenario as entered on the command line. Rates
// are percentages, as users type them; scenario converts them to fractions.
type scenarioFlags struct {
	name       string
	spending   float64
	inflation  float64
	years      int
	portfolio  float64
	returnPct  float64
	swrPct     float64
	basis      domain.ValuationBasis
	mode       domain.SolveMode
	contribute bool
	amount     float64
	frequency  domain.Frequency
	timing     domain.Timing
	birthDate  string
	targetAge  int
}

func (f *scenarioFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "Scenario", "scenario name used in reports")
	fs.Float64Var(&f.spending, "spending", 100000, "current annual spending in today's dollars")
	fs.Float64Var(&f.inflation, "inflation", 2.5, "inflation rate (%)")
	fs.IntVar(&f.years, "years", 25, "years until the target age")
	fs.Float64Var(&f.portfolio, "portfolio", 1000000, "current portfolio balance")
	fs.Float64Var(&f.returnPct, "return", 6.0, "expected annual return, nominal (%)")
	fs.Float64Var(&f.swrPct, "swr", 4.0, "safe withdrawal rate (%)")
	fs.Var(&f.basis, "basis", "valuation basis: nominal or real")
	fs.Var(&f.mode, "solve-for", "required_return, ending_balance or years_needed")
	fs.BoolVar(&f.contribute, "contribute", false, "include ongoing contributions")
	fs.Float64Var(&f.amount, "contribution", 500, "contribution amount per period")
	fs.Var(&f.frequency, "frequency", "contribution frequency: monthly or annual")
	fs.Var(&f.timing, "timing", "contribution timing: end_of_period or beginning_of_period")
	fs.StringVar(&f.birthDate, "birth-date", "", "birth date (YYYY-MM-DD); derives --years from --target-age")
	fs.IntVar(&f.targetAge, "target-age", domain.DefaultTargetAge, "target age used with --birth-date")
}

// scenario converts the flags into a validated scenario with fractional rates.
func (f *scenarioFlags) scenario(fs *pflag.FlagSet) (domain.Scenario, error) {
	sc := domain.Scenario{
		Name: f.name,
		Inputs: domain.ScenarioInputs{
			CurrentSpending:       f.spending,
			InflationRate:         f.inflation / 100,
			YearsUntilTarget:      f.years,
			CurrentPortfolio:      f.portfolio,
			ExpectedReturnNominal: f.returnPct / 100,
			SafeWithdrawalRate:    f.swrPct / 100,
			Basis:                 f.basis,
		},
		Contribution: domain.ContributionPlan{
			Enabled:   f.contribute,
			Amount:    f.amount,
			Frequency: f.frequency,
			Timing:    f.timing,
		},
		Mode: f.mode,
	}
	if f.birthDate != "" {
		if fs.Changed("years") {
			return sc, fmt.Errorf("use either --birth-date or --years, not both")
		}
		birth, err := domain.ParseDate(f.birthDate)
		if err != nil {
			return sc, fmt.Errorf("invalid --birth-date: %w", err)
		}
		sc.Inputs.BirthDate = &birth
		sc.Inputs.TargetAge = f.targetAge
		sc.Inputs.YearsUntilTarget = 0
	}
	if err := config.NewInputParser().ValidateScenario(&sc); err != nil {
		return sc, err
	}
	return sc, nil
}
