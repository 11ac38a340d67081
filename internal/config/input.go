package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"github.com/rpgo/coastfi-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// Input ranges accepted at the boundary. Rates are fractions.
const (
	MaxInflationRate      = 0.15
	MaxYearsUntilTarget   = 60
	MaxExpectedReturn     = 0.20
	MinSafeWithdrawalRate = 0.02
	MaxSafeWithdrawalRate = 0.06
	MaxTargetAge          = 120
)

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML (or JSON) file, derives horizons
// from birth dates and validates every scenario.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range config.Scenarios {
		if err := ip.ResolveHorizon(&config.Scenarios[i].Inputs); err != nil {
			return nil, fmt.Errorf("configuration validation failed: scenario %d: %w", i, err)
		}
	}
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ResolveHorizon fills YearsUntilTarget from BirthDate and TargetAge when a
// birth date is given. Giving both a birth date and a non-zero horizon is
// rejected.
func (ip *InputParser) ResolveHorizon(in *domain.ScenarioInputs) error {
	if in.BirthDate == nil {
		return nil
	}
	if in.YearsUntilTarget != 0 {
		return fmt.Errorf("%w: specify either birth_date or years_until_target, not both", ErrInvalidScenario)
	}
	age := in.TargetAge
	if age == 0 {
		age = domain.DefaultTargetAge
	}
	if age < 0 || age > MaxTargetAge {
		return fmt.Errorf("%w: target age must be between 1 and %d", ErrInvalidScenario, MaxTargetAge)
	}
	in.YearsUntilTarget = dateutil.YearsToAge(in.BirthDate.Time, age, nowFunc())
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", ErrInvalidScenario)
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("%w: scenario %d: name is required", ErrInvalidScenario, i)
		}
		if names[scenario.Name] {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrInvalidScenario, scenario.Name)
		}
		names[scenario.Name] = true

		if err := ip.ValidateInputs(&scenario.Inputs); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
		if err := ip.ValidateContribution(&scenario.Contribution); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}
	return nil
}

// ValidateInputs checks the ranges of a single scenario's inputs.
func (ip *InputParser) ValidateInputs(in *domain.ScenarioInputs) error {
	if !nonNegative(in.CurrentSpending) {
		return fmt.Errorf("%w: current spending cannot be negative", ErrInvalidScenario)
	}
	if !within(in.InflationRate, 0, MaxInflationRate) {
		return fmt.Errorf("%w: inflation rate must be between 0%% and %.0f%%", ErrInvalidScenario, MaxInflationRate*100)
	}
	if in.YearsUntilTarget < 0 || in.YearsUntilTarget > MaxYearsUntilTarget {
		return fmt.Errorf("%w: years until target must be between 0 and %d", ErrInvalidScenario, MaxYearsUntilTarget)
	}
	if !nonNegative(in.CurrentPortfolio) {
		return fmt.Errorf("%w: current portfolio cannot be negative", ErrInvalidScenario)
	}
	if !within(in.ExpectedReturnNominal, 0, MaxExpectedReturn) {
		return fmt.Errorf("%w: expected return must be between 0%% and %.0f%%", ErrInvalidScenario, MaxExpectedReturn*100)
	}
	if !within(in.SafeWithdrawalRate, MinSafeWithdrawalRate, MaxSafeWithdrawalRate) {
		return fmt.Errorf("%w: safe withdrawal rate must be between %.0f%% and %.0f%%", ErrInvalidScenario, MinSafeWithdrawalRate*100, MaxSafeWithdrawalRate*100)
	}
	return nil
}

// ValidateContribution checks a contribution plan. Amounts must be
// non-negative so that balances stay monotonic in rate and time.
func (ip *InputParser) ValidateContribution(plan *domain.ContributionPlan) error {
	if !nonNegative(plan.Amount) {
		return fmt.Errorf("%w: contribution amount cannot be negative", ErrInvalidScenario)
	}
	return nil
}

// ValidateScenario resolves the horizon of a single ad-hoc scenario and checks
// its ranges. Unlike ValidateConfiguration the name is optional.
func (ip *InputParser) ValidateScenario(sc *domain.Scenario) error {
	if err := ip.ResolveHorizon(&sc.Inputs); err != nil {
		return err
	}
	if err := ip.ValidateInputs(&sc.Inputs); err != nil {
		return err
	}
	return ip.ValidateContribution(&sc.Contribution)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := domain.ScenarioInputs{
		CurrentSpending:       100000,
		InflationRate:         0.025,
		YearsUntilTarget:      25,
		CurrentPortfolio:      1000000,
		ExpectedReturnNominal: 0.06,
		SafeWithdrawalRate:    0.04,
		Basis:                 domain.Nominal,
	}
	realBasis := base
	realBasis.Basis = domain.Real

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:   "Coast (nominal)",
				Inputs: base,
				Mode:   domain.RequiredReturn,
			},
			{
				Name:   "Coast (real)",
				Inputs: realBasis,
				Mode:   domain.YearsNeeded,
			},
			{
				Name:   "Monthly top-ups",
				Inputs: base,
				Contribution: domain.ContributionPlan{
					Enabled:   true,
					Amount:    500,
					Frequency: domain.Monthly,
					Timing:    domain.EndOfPeriod,
				},
				Mode: domain.EndingBalance,
			},
		},
	}
}
