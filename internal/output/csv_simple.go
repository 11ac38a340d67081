package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
// Undefined values are left empty.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "SolveFor", "Basis", "YearsUntilTarget", "FutureSpending", "TargetBalance", "MathReturn", "EndingBalance", "Gap", "RequiredReturn", "RequiredYears", "YearsDelta", "OnTrack"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range results.Results {
		row := []string{
			e.Name,
			e.Mode.String(),
			e.Inputs.Basis.String(),
			intToString(e.Inputs.YearsUntilTarget),
			csvAmount(e.FutureSpending),
			csvAmount(e.TargetBalance),
			csvFloat(e.MathReturn, 6),
			csvAmount(e.EndingBalance),
			csvAmount(e.Gap),
			csvFloat(e.RequiredReturn, 6),
			csvFloat(e.RequiredYears, 2),
			csvFloat(e.YearsDelta, 2),
			boolToString(e.OnTrack()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
