package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/fso-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row per retirement
// pathway followed by the severance and health coverage rows.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.BenefitsResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Category", "Option", "Monthly", "Annual", "Total", "EffectiveYears", "ReductionFactor", "CommencementAge"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range result.Scenarios {
		row := []string{
			"Retirement",
			string(s.Kind),
			s.MonthlyAmount.String(),
			s.AnnualAmount.String(),
			"",
			strconv.Itoa(s.EffectiveYears),
			s.ReductionFactor.StringFixed(4),
			optionalInt(s.CommencementAge),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	sev := result.Severance
	h := result.Health
	rows := [][]string{
		{"Severance", "Lump Sum", sev.MonthlyBase.String(), "", sev.Total.String(), strconv.Itoa(sev.YearsOfService), "", ""},
		{"Health", "FEHB " + h.PlanName, h.EmployeeMonthly.Round().String(), h.EmployeeMonthly.Annual().Round().String(), "", "", "", ""},
		{"Health", "COBRA", h.COBRA.Monthly.Round().String(), h.COBRA.Annual.Round().String(), h.COBRA.TotalCost.Round().String(), "", "", ""},
		{"Health", "ACA " + h.ACA.PlanName, h.ACA.Monthly.Round().String(), h.ACA.Annual.Round().String(), h.ACA.TotalCost.Round().String(), "", "", ""},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func optionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
