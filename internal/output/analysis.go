package output

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

const (
	msgReturnUndefined = "Enter positive values for portfolio, target, and years to calculate the required return (or values may be outside solvable bounds)."
	msgYearsUndefined  = "Enter positive values and a valid expected return to calculate years needed (or target may be unattainable within 80 years)."
	msgOnTrack         = "On track (or better) for Coast FI."
	msgAheadOfTimeline = "On your current timeline, you're at or ahead of target."
)

// Status classifies an evaluation against its target.
type Status int

const (
	StatusUndefined Status = iota
	StatusOnTrack
	StatusShort
)

func (s Status) String() string {
	switch s {
	case StatusOnTrack:
		return "on track"
	case StatusShort:
		return "short"
	}
	return "undefined"
}

// StatusOf reports whether the ending balance at the expected return meets the target.
func StatusOf(e domain.Evaluation) Status {
	switch {
	case math.IsNaN(e.Gap):
		return StatusUndefined
	case e.Gap <= 0:
		return StatusOnTrack
	}
	return StatusShort
}

func basisLabel(b domain.ValuationBasis) string {
	if b == domain.Real {
		return "Real"
	}
	return "Nominal"
}

func targetAge(in domain.ScenarioInputs) int {
	if in.TargetAge > 0 {
		return in.TargetAge
	}
	return domain.DefaultTargetAge
}

func targetLine(e domain.Evaluation) string {
	return fmt.Sprintf("Target at %d (%s basis): %s", targetAge(e.Inputs), basisLabel(e.Inputs.Basis), FormatCurrency(e.TargetBalance))
}

// GapMessage describes the ending balance against the target, or returns ""
// when the target is undefined.
func GapMessage(e domain.Evaluation) string {
	switch StatusOf(e) {
	case StatusOnTrack:
		return msgOnTrack
	case StatusShort:
		return fmt.Sprintf("Short of target by about %s.", FormatCurrency(e.Gap))
	}
	return ""
}

// YearsDeltaMessage compares the years needed with the current horizon.
func YearsDeltaMessage(e domain.Evaluation) string {
	if math.IsNaN(e.YearsDelta) {
		return ""
	}
	if e.YearsDelta <= 0 {
		return msgAheadOfTimeline
	}
	return fmt.Sprintf("You'd need about %.1f more years at this return to hit the target.", e.YearsDelta)
}

// ResultLines renders the headline result of an evaluation for its solve mode.
func ResultLines(e domain.Evaluation) []string {
	basis := strings.ToLower(basisLabel(e.Inputs.Basis))
	var lines []string
	switch e.Mode {
	case domain.RequiredReturn:
		if math.IsNaN(e.RequiredReturn) {
			return append(lines, msgReturnUndefined)
		}
		lines = append(lines,
			fmt.Sprintf("Required Return to Coast (%s): %s annualized", basis, FormatPercentage(e.RequiredReturn)),
			fmt.Sprintf("Ending Balance at Your Expected Return (%s %s): %s", FormatPercentage(e.MathReturn), basis, FormatCurrency(e.EndingBalance)),
			targetLine(e),
		)
	case domain.EndingBalance:
		lines = append(lines,
			fmt.Sprintf("Ending Balance with Expected Return (%s %s): %s", FormatPercentage(e.MathReturn), basis, FormatCurrency(e.EndingBalance)),
			targetLine(e),
		)
		if msg := GapMessage(e); msg != "" {
			lines = append(lines, msg)
		}
	case domain.YearsNeeded:
		if math.IsNaN(e.RequiredYears) {
			return append(lines, msgYearsUndefined)
		}
		lines = append(lines,
			fmt.Sprintf("Years Needed at %s %s: %.1f years", FormatPercentage(e.MathReturn), basis, e.RequiredYears),
			targetLine(e),
		)
		if msg := YearsDeltaMessage(e); msg != "" {
			lines = append(lines, msg)
		}
	}
	if caption := ContributionCaption(e.Contribution); caption != "" {
		lines = append(lines, caption)
	}
	return lines
}

// Recommendation names the scenario with the largest surplus over its target.
type Recommendation struct {
	ScenarioName string
	Gap          float64
	OnTrack      int
	Evaluated    int
}

// AnalyzeScenarios ranks the scenarios by gap; scenarios with an undefined
// target are counted but never recommended.
func AnalyzeScenarios(results *domain.Comparison) Recommendation {
	rec := Recommendation{Gap: math.NaN()}
	if results == nil {
		return rec
	}
	type ranked struct {
		name string
		gap  float64
	}
	var ranks []ranked
	for _, e := range results.Results {
		rec.Evaluated++
		if e.OnTrack() {
			rec.OnTrack++
		}
		if !math.IsNaN(e.Gap) {
			ranks = append(ranks, ranked{e.Name, e.Gap})
		}
	}
	if len(ranks) == 0 {
		return rec
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].gap < ranks[j].gap })
	rec.ScenarioName = ranks[0].name
	rec.Gap = ranks[0].gap
	return rec
}
