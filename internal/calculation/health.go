package calculation

import (
	"fmt"
	"strings"

	"github.com/rpgo/fso-calculator/internal/domain"
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Form defaults applied when a health field is left empty
const (
	DefaultHealthPlanID = "BCBS-basic"
	DefaultCoverageTier = domain.CoverageSelf
	DefaultHomeState    = "DC"
)

const (
	// COBRADurationMonths is the standard continuation period after separation
	COBRADurationMonths = 18
	// DefaultMarketplacePlan names the ACA estimate when a plan has no mapping
	DefaultMarketplacePlan = "Equivalent Marketplace Plan"
)

var (
	// employer pays three times the employee share (75/25 split)
	employerShareMultiplier = decimal.NewFromInt(3)
	cobraSurcharge          = decimal.NewFromFloat(1.02)
	cobraFee                = decimal.NewFromFloat(0.02)
)

// HealthComparator compares the current FEHB plan with COBRA and an ACA
// marketplace estimate using the reference rate tables.
type HealthComparator struct {
	ref *domain.ReferenceData
}

// NewHealthComparator creates a comparator over reference data
func NewHealthComparator(ref *domain.ReferenceData) *HealthComparator {
	return &HealthComparator{ref: ref}
}

// Compare looks up the plan rate and derives the COBRA and marketplace
// estimates. Empty fields take the form defaults; a plan and tier pair that
// is not in the rate table returns an *UnknownPlanError.
func (hc *HealthComparator) Compare(planID string, tier domain.CoverageTier, state string) (domain.HealthComparisonResult, error) {
	planID = defaultString(planID, DefaultHealthPlanID)
	tier = domain.CoverageTier(defaultString(string(tier), string(DefaultCoverageTier)))
	state = strings.ToUpper(defaultString(state, DefaultHomeState))

	plan, rate, ok := hc.ref.PlanRate(planID, tier)
	if !ok {
		return domain.HealthComparisonResult{}, &UnknownPlanError{Plan: planID, Tier: tier}
	}

	employee := money.NewMoneyFromDecimal(rate.Monthly)
	employer := employee.Mul(employerShareMultiplier)
	total := employee.Add(employer)
	factor, _ := hc.ref.StateFactor(state)

	cobraMonthly := total.Mul(cobraSurcharge)
	cobra := domain.COBRAEstimate{
		Monthly:        cobraMonthly,
		Annual:         cobraMonthly.Annual(),
		DurationMonths: COBRADurationMonths,
		TotalCost:      cobraMonthly.Mul(decimal.NewFromInt(COBRADurationMonths)),
	}

	acaMonthly := total.Mul(factor)
	marketplaceName := plan.MarketplaceName
	if marketplaceName == "" {
		marketplaceName = DefaultMarketplacePlan
	}
	aca := domain.MarketplaceEstimate{
		Monthly:   acaMonthly,
		Annual:    acaMonthly.Annual(),
		PlanName:  marketplaceName,
		TotalCost: acaMonthly.Annual(),
	}

	contributions := []domain.CalculationStep{
		domain.ValueStep("Employee Contribution", domain.Currency(employee)),
		domain.ValueStep("Employer Contribution", domain.Currency(employer)),
		domain.ValueStep("Total Contribution", domain.Currency(total)),
	}

	return domain.HealthComparisonResult{
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		CoverageTier:    tier,
		HomeState:       state,
		Biweekly:        money.NewMoneyFromDecimal(rate.Biweekly),
		EmployeeMonthly: employee,
		EmployerMonthly: employer,
		TotalMonthly:    total,
		StateFactor:     factor,
		COBRA:           cobra,
		ACA:             aca,
		COBRAFormula:    "Monthly Premium = (Employee + Employer Contribution) × 1.02",
		COBRASteps: append(append([]domain.CalculationStep{}, contributions...),
			domain.ValueStep("COBRA Fee (2%)", domain.Currency(total.Mul(cobraFee))),
			domain.ValueStep("Final Monthly Premium", domain.Currency(cobraMonthly)),
		),
		ACAFormula: "Monthly Premium = (Employee + Employer Contribution) × State Factor",
		ACASteps: append(append([]domain.CalculationStep{}, contributions...),
			domain.ValueStep("State Factor", domain.Factor(factor, 2)),
			domain.ValueStep("Final Monthly Premium", domain.Currency(acaMonthly)),
		),
		Notes: []string{
			"These estimates are based on comparable coverage options for your current enrollment type and coverage level.",
			fmt.Sprintf("COBRA coverage is available for %d months after separation", COBRADurationMonths),
			"ACA Marketplace plans are available year-round with special enrollment period",
			"Premiums may be eligible for tax credits based on income",
			hc.stateExplanation(state, factor),
		},
		Citations: []string{
			"COBRA: 29 U.S.C. § 1161 et seq.",
			"ACA Marketplace: 42 U.S.C. § 18031 et seq.",
		},
	}, nil
}

func (hc *HealthComparator) stateExplanation(state string, factor decimal.Decimal) string {
	if text, ok := hc.ref.StateExplanations[state]; ok {
		return text
	}
	f := factor.StringFixed(2)
	return fmt.Sprintf("For %s (state factor %s): The state factor of %s means ACA Marketplace premiums in %s are estimated to be equal to the federal employee plan premium, reflecting standard market rates for the region.",
		state, f, f, state)
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
