package calculation

import (
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SeveranceInstallments is the number of equal annual payments
const SeveranceInstallments = 3

// CalculateSeverance pays one month of base salary per year of service,
// capped at one year's salary, split into equal installments starting in
// the as-of year.
func CalculateSeverance(base money.Money, yearsOfService int, asOf time.Time) domain.SeveranceResult {
	years := max(0, yearsOfService)
	monthlyBase := base.Div(twelve)
	// base × years ÷ 12 keeps the cap comparison exact at twelve years
	uncapped := base.Mul(decimal.NewFromInt(int64(years))).Div(twelve)
	total := money.Min(uncapped, base)
	capped := uncapped.GreaterThan(base)

	installment := total.Installment(SeveranceInstallments)
	installments := make([]domain.Installment, SeveranceInstallments)
	for i := range installments {
		installments[i] = domain.Installment{Year: asOf.Year() + i, Amount: installment}
	}

	return domain.SeveranceResult{
		BaseSalary:     base,
		MonthlyBase:    monthlyBase.Round(),
		YearsOfService: years,
		Uncapped:       uncapped.Round(),
		Total:          total.Round(),
		Capped:         capped,
		Installments:   installments,
		Formula:        "Monthly Base Pay × Years of Service (capped at one year)",
		Steps: []domain.CalculationStep{
			domain.ExprStep("Monthly Base", domain.OpDivide, domain.Currency(monthlyBase.Round()),
				domain.Currency(base), domain.Count(12)),
			domain.ExprStep("Initial Severance", domain.OpMultiply, domain.Currency(uncapped.Round()),
				domain.Currency(monthlyBase.Round()), domain.Count(years)),
			domain.ValueStep("Capped Amount", domain.Currency(total.Round())),
		},
		Notes: []string{
			"Based on Foreign Service Pension System (FSPS) formula",
			"One month's pay for each year of service",
			"Capped at one year's salary",
			"Paid in three equal installments on January 1st",
		},
		Citations: []string{citeFSPS, citeBasicAnnuity},
	}
}
