package output

import (
	"testing"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"44625", "$44,625.00"},
		{"1234.567", "$1,234.57"},
		{"3718.75", "$3,718.75"},
		{"0", "$0.00"},
		{"0.005", "$0.01"},
		{"999.99", "$999.99"},
		{"1234567.8", "$1,234,567.80"},
		{"-1500", "-$1,500.00"},
		{"-0.004", "$0.00"},
		// beyond float64 cent precision
		{"90071992547409.93", "$90,071,992,547,409.93"},
		{"123456789012345.675", "$123,456,789,012,345.68"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "1.7%", FormatPercentage(decimal.RequireFromString("0.017"), 1))
	assert.Equal(t, "5.0%", FormatPercentage(decimal.RequireFromString("0.05"), 1))
	assert.Equal(t, "12.35%", FormatPercentage(decimal.RequireFromString("0.123456"), 2))
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name     string
		q        domain.Quantity
		expected string
	}{
		{"currency", domain.Currency(money.NewMoneyFromInt(105000)), "$105,000.00"},
		{"count", domain.Count(25), "25"},
		{"large count", domain.Count(1200), "1,200"},
		{"factor", domain.Factor(decimal.RequireFromString("0.017"), 3), "0.017"},
		{"factor padded", domain.Factor(decimal.RequireFromString("0.95"), 4), "0.9500"},
		{"factor as-is", domain.Factor(decimal.RequireFromString("1.02"), -1), "1.02"},
		{"percent", domain.Percent(decimal.RequireFromString("0.02"), 1), "2.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuantity(tt.q))
		})
	}
}

func TestFormatStep(t *testing.T) {
	expr := domain.ExprStep("Annual Amount", domain.OpMultiply,
		domain.Currency(money.NewMoneyFromInt(44625)),
		domain.Currency(money.NewMoneyFromInt(105000)),
		domain.Count(25),
		domain.Factor(decimal.RequireFromString("0.017"), 3),
	)
	assert.Equal(t, "Annual Amount: $105,000.00 × 25 × 0.017 = $44,625.00", FormatStep(expr))

	value := domain.ValueStep("Monthly Amount", domain.Currency(money.NewMoney(3718.75)))
	assert.Equal(t, "Monthly Amount: $3,718.75", FormatStep(value))

	assert.Equal(t, []string{"Monthly Amount: $3,718.75"}, FormatSteps([]domain.CalculationStep{value}))
	assert.Empty(t, FormatSteps(nil))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in       dateutil.Duration
		expected string
	}{
		{dateutil.Duration{Years: 25}, "25 years"},
		{dateutil.Duration{Years: 1, Months: 1, Days: 1}, "1 year, 1 month, 1 day"},
		{dateutil.Duration{Years: 0, Months: 4, Days: 21}, "0 years, 4 months, 21 days"},
		{dateutil.Duration{Years: 20, Days: 3}, "20 years, 3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.in))
		})
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "56 years", FormatAge(decimal.NewFromInt(56)))
	assert.Equal(t, "56 years, 4 months", FormatAge(decimal.NewFromInt(676).Div(decimal.NewFromInt(12))))
	assert.Equal(t, "57 years", FormatAge(decimal.RequireFromString("56.99")))
}

func TestGenerateAssumptions(t *testing.T) {
	current := GenerateAssumptions(domain.CurrentPolicy())
	assert.Contains(t, current, "Annuity multiplier: 1.7% per year of service")
	assert.Contains(t, current, "VERA: age 43 with 15 years of service when offered")
	assert.Contains(t, current, "TERA: 15 years of service when offered; reduced 2.0% per year short of 20 years")

	legacy := GenerateAssumptions(domain.LegacyPolicy())
	assert.Contains(t, legacy, "Policy preset: legacy")
	assert.Contains(t, legacy, "TERA: 15 years of service when offered, under age 50; reduced 1.0% a year, prorated by month, short of 20 years")
}
