package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/fso-calculator/internal/domain"
)

// CSVDetailedExporter writes every calculation step as a row so a result
// can be audited in a spreadsheet.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.BenefitsResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Item", "Step", "Label", "Value", "Detail"}); err != nil {
		return nil, err
	}

	write := func(section, item string, steps []domain.CalculationStep) error {
		for i, s := range steps {
			row := []string{section, item, strconv.Itoa(i + 1), s.Label, s.Result.Value.String(), FormatStep(s)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write("Service", "High-3 Average", result.Service.HighThree.Steps); err != nil {
		return nil, err
	}
	for _, s := range result.Scenarios {
		if err := write("Retirement", string(s.Kind), s.Steps); err != nil {
			return nil, err
		}
	}
	if err := write("Severance", "Lump Sum", result.Severance.Steps); err != nil {
		return nil, err
	}
	for _, in := range result.Severance.Installments {
		row := []string{"Severance", "Installment", strconv.Itoa(in.Year), "Installment " + strconv.Itoa(in.Year), in.Amount.String(), FormatCurrency(in.Amount.Decimal)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := write("Health", "COBRA", result.Health.COBRASteps); err != nil {
		return nil, err
	}
	if err := write("Health", "ACA", result.Health.ACASteps); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
