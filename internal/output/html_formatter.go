package output

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"errors"
	"html/template"
	"time"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline projection chart per scenario.
type HTMLFormatter struct {
	Branding Branding
	Start    time.Time
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"years": FormatYears,
	"lines": ResultLines,
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	domain.Evaluation
	Status Status
	Chart  template.URL
}

// Class is the CSS class marking the scenario status.
func (s htmlScenario) Class() string {
	switch s.Status {
	case StatusOnTrack:
		return "on-track"
	case StatusShort:
		return "short"
	}
	return ""
}

type htmlReport struct {
	Branding    Branding
	Scenarios   []htmlScenario
	Summary     Recommendation
	Assumptions []string
}

func (h HTMLFormatter) Format(results *domain.Comparison) ([]byte, error) {
	b := h.Branding
	if b.Name == "" {
		b = DefaultBranding()
	}
	report := htmlReport{
		Branding:    b,
		Summary:     AnalyzeScenarios(results),
		Assumptions: results.Assumptions,
	}
	for _, e := range results.Results {
		sc := htmlScenario{Evaluation: e, Status: StatusOf(e)}
		png, err := RenderProjectionChart(e, b, h.Start)
		switch {
		case err == nil:
			sc.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		case !errors.Is(err, ErrNoProjection):
			return nil, err
		}
		report.Scenarios = append(report.Scenarios, sc)
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
