package output

import (
	json "github.com/goccy/go-json"
	"github.com/rpgo/fso-calculator/internal/domain"
)

// JSONFormatter serializes the presented view as pretty-printed JSON, the
// same shape the HTTP API returns.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.BenefitsResult) ([]byte, error) {
	return json.MarshalIndent(Present(result, nil), "", "  ")
}
