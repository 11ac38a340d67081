package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseEnums_AcceptsLabelsAndCanonicalNames(t *testing.T) {
	freqs := map[string]Frequency{"Monthly": Monthly, "annual": Annual, " YEARLY ": Annual}
	for in, want := range freqs {
		got, err := ParseFrequency(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	timings := map[string]Timing{
		"End of period":       EndOfPeriod,
		"end_of_period":       EndOfPeriod,
		"Beginning of period": BeginningOfPeriod,
		"beginning-of-period": BeginningOfPeriod,
	}
	for in, want := range timings {
		got, err := ParseTiming(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	bases := map[string]ValuationBasis{
		"Nominal (inflate spending)": Nominal,
		"Real (today's dollars)":     Real,
		"REAL":                       Real,
	}
	for in, want := range bases {
		got, err := ParseValuationBasis(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	modes := map[string]SolveMode{
		"Required Return to Coast":            RequiredReturn,
		"ending_balance":                      EndingBalance,
		"Years Needed at Expected Return":     YearsNeeded,
		"years":                               YearsNeeded,
		"Ending Balance with Expected Return": EndingBalance,
	}
	for in, want := range modes {
		got, err := ParseSolveMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseEnums_RejectsTypos(t *testing.T) {
	_, err := ParseFrequency("Montly")
	assert.Error(t, err)
	_, err = ParseTiming("middle")
	assert.Error(t, err)
	_, err = ParseValuationBasis("nominal-ish")
	assert.Error(t, err)
	_, err = ParseSolveMode("everything")
	assert.Error(t, err)
}

func TestEnums_YAMLRoundTrip(t *testing.T) {
	src := "enabled: true\namount: 500\nfrequency: Annual\ntiming: Beginning of period\n"
	var plan ContributionPlan
	require.NoError(t, yaml.Unmarshal([]byte(src), &plan))
	assert.Equal(t, Annual, plan.Frequency)
	assert.Equal(t, BeginningOfPeriod, plan.Timing)

	out, err := yaml.Marshal(plan)
	require.NoError(t, err)
	assert.Contains(t, string(out), "frequency: annual")
	assert.Contains(t, string(out), "timing: beginning_of_period")

	var bad ContributionPlan
	assert.Error(t, yaml.Unmarshal([]byte("frequency: fortnightly\n"), &bad))
}

func TestEnums_FlagValue(t *testing.T) {
	var b ValuationBasis
	require.NoError(t, b.Set("real"))
	assert.Equal(t, Real, b)
	assert.Equal(t, "basis", b.Type())
	assert.Error(t, b.Set("imaginary"))
}

func TestFrequency_PeriodsPerYear(t *testing.T) {
	assert.Equal(t, 12, Monthly.PeriodsPerYear())
	assert.Equal(t, 1, Annual.PeriodsPerYear())
}

func TestContributionPlan_Active(t *testing.T) {
	var nilPlan *ContributionPlan
	assert.False(t, nilPlan.Active())
	assert.False(t, (&ContributionPlan{Enabled: false, Amount: 100}).Active())
	assert.False(t, (&ContributionPlan{Enabled: true, Amount: 0}).Active())
	assert.True(t, (&ContributionPlan{Enabled: true, Amount: 100}).Active())
}

func TestEnums_JSON(t *testing.T) {
	b, err := json.Marshal(ContributionPlan{Enabled: true, Amount: 1, Frequency: Annual})
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled":true,"amount":1,"frequency":"annual","timing":"end_of_period"}`, string(b))
}
