package domain

// DefaultTargetAge is the age the horizon is measured to when it is
// derived from a birth date.
const DefaultTargetAge = 65

// ScenarioInputs holds the household and market assumptions of one evaluation.
// Rates are decimal fractions (0.06 for 6%).
type ScenarioInputs struct {
	CurrentSpending       float64        `yaml:"current_spending" json:"current_spending"`
	InflationRate         float64        `yaml:"inflation_rate" json:"inflation_rate"`
	YearsUntilTarget      int            `yaml:"years_until_target" json:"years_until_target"`
	CurrentPortfolio      float64        `yaml:"current_portfolio" json:"current_portfolio"`
	ExpectedReturnNominal float64        `yaml:"expected_return_nominal" json:"expected_return_nominal"`
	SafeWithdrawalRate    float64        `yaml:"safe_withdrawal_rate" json:"safe_withdrawal_rate"`
	Basis                 ValuationBasis `yaml:"valuation_basis" json:"valuation_basis"`

	// Optional: derive YearsUntilTarget from a birth date and target age.
	BirthDate *Date `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	TargetAge int   `yaml:"target_age,omitempty" json:"target_age,omitempty"`
}

// ContributionPlan describes optional periodic deposits into the portfolio.
type ContributionPlan struct {
	Enabled   bool      `yaml:"enabled" json:"enabled"`
	Amount    float64   `yaml:"amount" json:"amount"`
	Frequency Frequency `yaml:"frequency" json:"frequency"`
	Timing    Timing    `yaml:"timing" json:"timing"`
}

// Active reports whether the plan contributes anything. A disabled plan or a
// zero amount degenerates to a pure lump-sum projection.
func (cp *ContributionPlan) Active() bool {
	return cp != nil && cp.Enabled && cp.Amount > 0
}

// Scenario is one named entry of a scenario file.
type Scenario struct {
	Name         string           `yaml:"name" json:"name"`
	Inputs       ScenarioInputs   `yaml:"inputs" json:"inputs"`
	Contribution ContributionPlan `yaml:"contribution,omitempty" json:"contribution"`
	Mode         SolveMode        `yaml:"solve_for" json:"solve_for"`
}

// Configuration is the top level of a scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
