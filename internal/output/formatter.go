package output

import (
	"errors"
	"sort"
	"strings"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.Comparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// builtInFormatters returns the available formatters configured with branding.
func builtInFormatters(b Branding) []Formatter {
	return []Formatter{
		ConsoleFormatter{},
		ConsoleLiteFormatter{},
		CSVSummarizer{},
		CSVProjectionExporter{},
		HTMLFormatter{Branding: b},
		JSONFormatter{},
		ChartFormatter{Branding: b},
	}
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string, b Branding) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters(b) {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":           "console",
	"verbose":        "console",
	"summary":        "console-lite",
	"csv-summary":    "csv",
	"csv-projection": "projection-csv",
	"detailed-csv":   "projection-csv",
	"html-report":    "html",
	"json-pretty":    "json",
	"chart":          "png",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	fs := builtInFormatters(DefaultBranding())
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
