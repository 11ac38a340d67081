package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Reporter writes formatted comparisons to timestamped files.
type Reporter struct {
	Dir      string
	Branding Branding
	now      func() time.Time
}

// NewReporter returns a Reporter writing into dir.
func NewReporter(dir string, b Branding) *Reporter {
	return &Reporter{Dir: dir, Branding: b, now: time.Now}
}

// Formatter resolves a format name or alias, listing the valid choices on failure.
func (r *Reporter) Formatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format, r.Branding); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats results with the named formatter.
func (r *Reporter) Render(results *domain.Comparison, format string) ([]byte, error) {
	f, err := r.Formatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(results)
}

// GenerateReport writes results in the given format and returns the file path.
// The special format "all" writes the console, csv and projection-csv reports.
func (r *Reporter) GenerateReport(results *domain.Comparison, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console", "csv", "projection-csv"} {
			p, err := r.GenerateReport(results, name)
			if err != nil {
				return paths, err
			}
			paths = append(paths, p...)
		}
		return paths, nil
	}
	f, err := r.Formatter(format)
	if err != nil {
		return nil, err
	}
	p, err := r.WriteFormatted(f, results)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

// WriteFormatted renders results with f into coastfi_<name>_<timestamp>.<ext>.
func (r *Reporter) WriteFormatted(f Formatter, results *domain.Comparison) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	dir := r.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	name := fmt.Sprintf("coastfi_%s_%s.%s", f.Name(), now().Format("20060102_150405"), f.Extension())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// SaveConfiguration writes a scenario file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
