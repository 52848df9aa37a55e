package calculation

import (
	"fmt"

	"github.com/rpgo/fso-calculator/internal/domain"
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var three = decimal.NewFromInt(3)

// BaseSalary looks up the schedule salary for a grade and step and applies
// the locality rate, rounding to whole dollars. An unknown grade or step
// yields zero.
func BaseSalary(ref *domain.ReferenceData, grade, step string) money.Money {
	g, ok := ref.Grade(grade)
	if !ok {
		return money.Zero()
	}
	schedule := g.StepSalary(step)
	factor := decimal.NewFromInt(1).Add(ref.Locality.Rate)
	return money.NewMoneyFromDecimal(schedule.Mul(factor)).RoundDollars()
}

// ResolveSalaryYears substitutes the base salary for any salary year that was
// not supplied (zero or negative).
func ResolveSalaryYears(base money.Money, years [3]int) [3]money.Money {
	var out [3]money.Money
	for i, y := range years {
		if y > 0 {
			out[i] = money.NewMoneyFromInt(int64(y))
		} else {
			out[i] = base
		}
	}
	return out
}

// HighThreeAverage is the mean of three salary years rounded to cents
func HighThreeAverage(years [3]money.Money) money.Money {
	sum := years[0].Add(years[1]).Add(years[2])
	return sum.Div(three).Round()
}

// HighThree builds the explained high-three average
func HighThree(years [3]money.Money) domain.HighThreeDetail {
	avg := HighThreeAverage(years)
	steps := make([]domain.CalculationStep, 0, 4)
	for i, y := range years {
		steps = append(steps, domain.ValueStep(fmt.Sprintf("Year %d", i+1), domain.Currency(y)))
	}
	steps = append(steps, domain.ValueStep("Average", domain.Currency(avg)))

	return domain.HighThreeDetail{
		Amount:      avg,
		SalaryYears: years,
		Formula:     "(Year 1 + Year 2 + Year 3) ÷ 3",
		Steps:       steps,
	}
}
