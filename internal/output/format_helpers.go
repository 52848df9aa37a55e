package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// newPrinter returns a US English printer. Printers keep formatting state,
// so one is created per call rather than shared between goroutines.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

// FormatCurrency formats a decimal as USD with grouping and cents, e.g. $44,625.00
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	fixed := rounded.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.'):]
	return sign + "$" + newPrinter().Sprintf("%d", rounded.IntPart()) + cents
}

// FormatCount formats a whole number with grouping
func FormatCount(n int64) string {
	return newPrinter().Sprintf("%d", n)
}

// FormatPercentage formats a rate as a percentage; 0.05 with places 1 is "5.0%"
func FormatPercentage(rate decimal.Decimal, places int32) string {
	return rate.Mul(hundred).StringFixed(places) + "%"
}

// FormatQuantity renders a step quantity according to its unit
func FormatQuantity(q domain.Quantity) string {
	switch q.Unit {
	case domain.UnitCurrency:
		return FormatCurrency(q.Value)
	case domain.UnitCount:
		return FormatCount(q.Value.IntPart())
	case domain.UnitPercent:
		return FormatPercentage(q.Value, q.Places)
	default:
		if q.Places < 0 {
			return q.Value.String()
		}
		return q.Value.StringFixed(q.Places)
	}
}

// FormatStep renders "Label: a × b = result", or "Label: result" when the
// step has no operands.
func FormatStep(s domain.CalculationStep) string {
	if len(s.Operands) == 0 {
		return s.Label + ": " + FormatQuantity(s.Result)
	}
	parts := make([]string, len(s.Operands))
	for i, op := range s.Operands {
		parts[i] = FormatQuantity(op)
	}
	return fmt.Sprintf("%s: %s = %s", s.Label, strings.Join(parts, " "+string(s.Operator)+" "), FormatQuantity(s.Result))
}

// FormatSteps renders every step in order
func FormatSteps(steps []domain.CalculationStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = FormatStep(s)
	}
	return out
}

// FormatDuration renders "25 years, 9 months, 12 days", dropping zero
// months and days.
func FormatDuration(d dateutil.Duration) string {
	parts := []string{plural(d.Years, "year")}
	if d.Months > 0 {
		parts = append(parts, plural(d.Months, "month"))
	}
	if d.Days > 0 {
		parts = append(parts, plural(d.Days, "day"))
	}
	return strings.Join(parts, ", ")
}

// FormatAge renders a fractional age such as 56.333 as "56 years, 4 months"
func FormatAge(age decimal.Decimal) string {
	years := age.IntPart()
	months := age.Sub(decimal.NewFromInt(years)).Mul(decimal.NewFromInt(12)).Round(0).IntPart()
	if months == 12 {
		years++
		months = 0
	}
	return FormatDuration(dateutil.Duration{Years: int(years), Months: int(months)})
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
