package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// ConsoleFormatter renders the full per-scenario report for a terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COAST FI SCENARIO REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	for i, e := range results.Results {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "%s\n", e.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		in := e.Inputs
		fmt.Fprintf(&buf, "  Current spending:      %s/yr\n", FormatCurrency(in.CurrentSpending))
		fmt.Fprintf(&buf, "  Current portfolio:     %s\n", FormatCurrency(in.CurrentPortfolio))
		fmt.Fprintf(&buf, "  Years until target:    %d\n", in.YearsUntilTarget)
		fmt.Fprintf(&buf, "  Inflation:             %s\n", FormatPercentage(in.InflationRate))
		fmt.Fprintf(&buf, "  Expected return:       %s nominal\n", FormatPercentage(in.ExpectedReturnNominal))
		fmt.Fprintf(&buf, "  Safe withdrawal rate:  %s\n", FormatPercentage(in.SafeWithdrawalRate))
		fmt.Fprintf(&buf, "  Future spending:       %s/yr\n", FormatCurrency(e.FutureSpending))
		fmt.Fprintln(&buf)
		for _, line := range ResultLines(e) {
			fmt.Fprintf(&buf, "  %s\n", line)
		}
	}
	if len(results.Results) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, strings.Repeat("=", 60))
		fmt.Fprintf(&buf, "On track: %d of %d scenarios\n", rec.OnTrack, rec.Evaluated)
		if rec.ScenarioName != "" {
			fmt.Fprintf(&buf, "Strongest position: %s (%s)\n", rec.ScenarioName, gapSummary(rec.Gap))
		}
	}
	if len(results.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func gapSummary(gap float64) string {
	if gap <= 0 {
		return FormatCurrency(-gap) + " above target"
	}
	return FormatCurrency(gap) + " below target"
}

// ConsoleLiteFormatter prints one line per scenario.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string      { return "console-lite" }
func (c ConsoleLiteFormatter) Extension() string { return "txt" }

func (c ConsoleLiteFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COAST FI SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, e := range results.Results {
		fmt.Fprintf(&buf, "%s: Target=%s Ending=%s RequiredReturn=%s YearsNeeded=%s Status=%s\n",
			e.Name,
			FormatCurrency(e.TargetBalance),
			FormatCurrency(e.EndingBalance),
			FormatPercentage(e.RequiredReturn),
			FormatYears(e.RequiredYears),
			StatusOf(e),
		)
	}
	return buf.Bytes(), nil
}
