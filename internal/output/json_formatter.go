package output

import (
	"encoding/json"

	"github.com/rpgo/coastfi-calculator/internal/domain"
)

// JSONFormatter serializes the comparison as pretty-printed JSON.
// Undefined values are written as null.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
