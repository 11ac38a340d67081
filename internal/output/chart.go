package output

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"github.com/rpgo/coastfi-calculator/pkg/dateutil"
	charts "github.com/vicanso/go-charts/v2"
)

// ErrNoProjection is returned when there is no projection to draw.
var ErrNoProjection = errors.New("no projection to chart")

const (
	chartWidth  = 900
	chartHeight = 500
)

// RenderProjectionChart draws the projected balance and the flat target line as a PNG.
// When start is non-zero the x axis is labelled with calendar years.
func RenderProjectionChart(e domain.Evaluation, b Branding, start time.Time) ([]byte, error) {
	if len(e.Projection) == 0 {
		return nil, ErrNoProjection
	}
	labels := chartLabels(len(e.Projection), start)
	balances := make([]float64, len(e.Projection))
	target := make([]float64, len(e.Projection))
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for i, p := range e.Projection {
		if math.IsNaN(p.Balance) || math.IsInf(p.Balance, 0) {
			return nil, fmt.Errorf("projection year %d is undefined: %w", p.Year, ErrNoProjection)
		}
		balances[i] = p.Balance
		target[i] = e.TargetBalance
		minVal = math.Min(minVal, p.Balance)
		maxVal = math.Max(maxVal, p.Balance)
	}
	series := [][]float64{balances}
	legend := []string{"Projection @ Expected Return"}
	if !math.IsNaN(e.TargetBalance) && !math.IsInf(e.TargetBalance, 0) {
		series = append(series, target)
		legend = append(legend, fmt.Sprintf("Target at %d", targetAge(e.Inputs)))
		minVal = math.Min(minVal, e.TargetBalance)
		maxVal = math.Max(maxVal, e.TargetBalance)
	}

	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	yMin := math.Max(0, minVal-padding)
	yMax := maxVal + padding

	splitNum := len(labels) - 1
	if splitNum > 10 {
		splitNum = 10
	}
	if splitNum < 1 {
		splitNum = 1
	}

	title := b.Name
	if title == "" {
		title = DefaultBranding().Name
	}
	p, err := charts.LineRender(
		series,
		charts.TitleTextOptionFunc(title, e.Name),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: legend, Left: charts.PositionRight}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}

// chartLabels returns "years from now" labels, or calendar years when a start date is known.
func chartLabels(n int, start time.Time) []string {
	labels := make([]string, n)
	if !start.IsZero() {
		for i, y := range dateutil.CalendarYears(start, n-1) {
			labels[i] = strconv.Itoa(y)
		}
		return labels
	}
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// ChartFormatter renders the first scenario that has a projection.
type ChartFormatter struct {
	Branding Branding
	// Start labels the x axis with calendar years when set.
	Start time.Time
}

func (c ChartFormatter) Name() string      { return "png" }
func (c ChartFormatter) Extension() string { return "png" }

func (c ChartFormatter) Format(results *domain.Comparison) ([]byte, error) {
	for _, e := range results.Results {
		if len(e.Projection) > 0 {
			return RenderProjectionChart(e, c.Branding, c.Start)
		}
	}
	return nil, ErrNoProjection
}
