package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// CSVProjectionExporter writes every projection point of every scenario,
// one row per scenario year, alongside the scenario target.
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string      { return "projection-csv" }
func (c CSVProjectionExporter) Extension() string { return "csv" }

func (c CSVProjectionExporter) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Year", "Balance", "TargetBalance"}); err != nil {
		return nil, err
	}
	for _, e := range results.Results {
		for _, p := range e.Projection {
			row := []string{e.Name, intToString(p.Year), csvAmount(p.Balance), csvAmount(e.TargetBalance)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// WriteProjectionCSV writes a single projection series without a scenario column.
func WriteProjectionCSV(out io.Writer, points []domain.ProjectionPoint) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"Year", "Balance"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := w.Write([]string{intToString(p.Year), csvAmount(p.Balance)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
