package domain

import (
	"fmt"
	"strings"
)

// Frequency is how often a contribution is deposited.
type Frequency int

const (
	Monthly Frequency = iota
	Annual
)

// Timing places each contribution at the start or the end of its period.
type Timing int

const (
	EndOfPeriod Timing = iota
	BeginningOfPeriod
)

// ValuationBasis selects how inflation enters the target computation.
type ValuationBasis int

const (
	// Nominal inflates spending to the horizon and uses the nominal return.
	Nominal ValuationBasis = iota
	// Real keeps spending in today's dollars and deflates the return.
	Real
)

// SolveMode selects which derived quantity is the primary result.
// All three quantities are always computed.
type SolveMode int

const (
	RequiredReturn SolveMode = iota
	EndingBalance
	YearsNeeded
)

// normalizeEnum lowers the input and folds separators so that
// "End of period", "end_of_period" and "end-of-period" compare equal.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

var frequencyNames = map[string]Frequency{
	"monthly":  Monthly,
	"month":    Monthly,
	"annual":   Annual,
	"annually": Annual,
	"yearly":   Annual,
}

func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case Annual:
		return "annual"
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

// PeriodsPerYear returns the number of contribution periods in a year.
func (f Frequency) PeriodsPerYear() int {
	if f == Annual {
		return 1
	}
	return 12
}

// ParseFrequency accepts the canonical names and common synonyms.
func ParseFrequency(s string) (Frequency, error) {
	if f, ok := frequencyNames[normalizeEnum(s)]; ok {
		return f, nil
	}
	return Monthly, fmt.Errorf("unknown contribution frequency %q (want monthly or annual)", s)
}

func (f Frequency) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Frequency) UnmarshalText(b []byte) error {
	v, err := ParseFrequency(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Set and Type let the enum be used directly as a command-line flag value.
func (f *Frequency) Set(s string) error { return f.UnmarshalText([]byte(s)) }
func (f *Frequency) Type() string       { return "frequency" }

var timingNames = map[string]Timing{
	"end":                 EndOfPeriod,
	"end of period":       EndOfPeriod,
	"ordinary":            EndOfPeriod,
	"beginning":           BeginningOfPeriod,
	"begin":               BeginningOfPeriod,
	"start":               BeginningOfPeriod,
	"beginning of period": BeginningOfPeriod,
	"due":                 BeginningOfPeriod,
}

func (t Timing) String() string {
	switch t {
	case EndOfPeriod:
		return "end_of_period"
	case BeginningOfPeriod:
		return "beginning_of_period"
	}
	return fmt.Sprintf("Timing(%d)", int(t))
}

// Label is the human readable form used in report captions.
func (t Timing) Label() string {
	if t == BeginningOfPeriod {
		return "beginning of period"
	}
	return "end of period"
}

func ParseTiming(s string) (Timing, error) {
	if t, ok := timingNames[normalizeEnum(s)]; ok {
		return t, nil
	}
	return EndOfPeriod, fmt.Errorf("unknown contribution timing %q (want end_of_period or beginning_of_period)", s)
}

func (t Timing) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Timing) UnmarshalText(b []byte) error {
	v, err := ParseTiming(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *Timing) Set(s string) error { return t.UnmarshalText([]byte(s)) }
func (t *Timing) Type() string       { return "timing" }

var basisNames = map[string]ValuationBasis{
	"nominal":                    Nominal,
	"nominal (inflate spending)": Nominal,
	"real":                       Real,
	"real (today's dollars)":     Real,
}

func (b ValuationBasis) String() string {
	switch b {
	case Nominal:
		return "nominal"
	case Real:
		return "real"
	}
	return fmt.Sprintf("ValuationBasis(%d)", int(b))
}

func ParseValuationBasis(s string) (ValuationBasis, error) {
	if b, ok := basisNames[normalizeEnum(s)]; ok {
		return b, nil
	}
	return Nominal, fmt.Errorf("unknown valuation basis %q (want nominal or real)", s)
}

func (b ValuationBasis) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *ValuationBasis) UnmarshalText(text []byte) error {
	v, err := ParseValuationBasis(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b *ValuationBasis) Set(s string) error { return b.UnmarshalText([]byte(s)) }
func (b *ValuationBasis) Type() string       { return "basis" }

var solveModeNames = map[string]SolveMode{
	"required return":                     RequiredReturn,
	"return":                              RequiredReturn,
	"required return to coast":            RequiredReturn,
	"ending balance":                      EndingBalance,
	"balance":                             EndingBalance,
	"ending balance with expected return": EndingBalance,
	"years needed":                        YearsNeeded,
	"years":                               YearsNeeded,
	"years needed at expected return":     YearsNeeded,
}

func (m SolveMode) String() string {
	switch m {
	case RequiredReturn:
		return "required_return"
	case EndingBalance:
		return "ending_balance"
	case YearsNeeded:
		return "years_needed"
	}
	return fmt.Sprintf("SolveMode(%d)", int(m))
}

func ParseSolveMode(s string) (SolveMode, error) {
	if m, ok := solveModeNames[normalizeEnum(s)]; ok {
		return m, nil
	}
	return RequiredReturn, fmt.Errorf("unknown solve mode %q (want required_return, ending_balance or years_needed)", s)
}

func (m SolveMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *SolveMode) UnmarshalText(b []byte) error {
	v, err := ParseSolveMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *SolveMode) Set(s string) error { return m.UnmarshalText([]byte(s)) }
func (m *SolveMode) Type() string       { return "mode" }
