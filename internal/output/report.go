package output

import (
	"github.com/rpgo/fso-calculator/internal/domain"
)

// GenerateReport writes the result in the named format to a timestamped file
// in dir. "all" writes the verbose console, detailed CSV and HTML reports.
func GenerateReport(result *domain.BenefitsResult, format, dir string) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = []string{"console-verbose", "detailed-csv", "html"}
	}

	var written []string
	for _, name := range names {
		f, err := GetFormatterByName(name)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(f, result, dir)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
