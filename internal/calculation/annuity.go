package calculation

import (
	"fmt"

	"github.com/rpgo/fso-calculator/internal/domain"
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	citeFSPS          = "3 FAM 6110 - Foreign Service Pension System"
	citeBasicAnnuity  = "3 FAM 6112 - Computation of Basic Annuity"
	citeVoluntaryER   = "3 FAM 6113 - Voluntary Early Retirement"
	citeTemporaryER   = "3 FAM 6114 - Temporary Early Retirement Authority"
	noteRoundedAnnual = "Annual amount rounded to nearest dollar before calculating monthly amount"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// AnnuityCalculator computes the annuity for each retirement pathway under one policy
type AnnuityCalculator struct {
	Policy domain.RetirementPolicy
}

// NewAnnuityCalculator creates an annuity calculator for a policy
func NewAnnuityCalculator(policy domain.RetirementPolicy) *AnnuityCalculator {
	return &AnnuityCalculator{Policy: policy}
}

// Calculate computes the scenario for one pathway. Eligibility is not checked here.
func (ac *AnnuityCalculator) Calculate(kind domain.RetirementKind, p domain.DerivedProfile) (domain.RetirementScenario, error) {
	switch kind {
	case domain.KindRegular:
		return ac.Regular(p), nil
	case domain.KindVERA:
		return ac.VERA(p), nil
	case domain.KindTERA:
		return ac.TERA(p), nil
	case domain.KindMRAPlus10:
		return ac.MRAPlus10(p), nil
	case domain.KindDeferred:
		return ac.Deferred(p), nil
	}
	return domain.RetirementScenario{}, fmt.Errorf("unknown retirement kind %q", kind)
}

// Regular is the unreduced annuity over the full years of service
func (ac *AnnuityCalculator) Regular(p domain.DerivedProfile) domain.RetirementScenario {
	s := ac.compute(domain.KindRegular, p.HighThreeAverage, p.YearsOfService, one)
	s.Formula = fmt.Sprintf("High-Three Average × Years of Service × %s", ac.basePercent())
	s.Steps = ac.amountSteps(s, nil)
	s.Notes = []string{
		"Based on Foreign Service Pension System (FSPS) formula",
		"No reduction applied for regular retirement",
		noteRoundedAnnual,
	}
	s.Citations = []string{citeFSPS, citeBasicAnnuity}
	return s
}

// VERA is the unreduced annuity over the early retirement years
func (ac *AnnuityCalculator) VERA(p domain.DerivedProfile) domain.RetirementScenario {
	s := ac.compute(domain.KindVERA, p.HighThreeAverage, p.EarlyRetirementYears, one)
	s.Formula = fmt.Sprintf("High-Three Average × Early Retirement Years × %s", ac.basePercent())
	s.Steps = ac.amountSteps(s, nil)
	s.Notes = []string{
		"Based on Voluntary Early Retirement Authority (VERA) formula",
		"No reduction applied for VERA retirement",
		"Uses early retirement years instead of total years of service",
		fmt.Sprintf("Requires age %d or older with at least %d years of service", ac.Policy.VERAMinimumAge, ac.Policy.VERAMinimumYears),
		noteRoundedAnnual,
	}
	s.Citations = []string{citeFSPS, citeBasicAnnuity, citeVoluntaryER}
	return s
}

// TERA reduces the annuity for service short of the full-service threshold,
// either per month or per whole year depending on the policy.
func (ac *AnnuityCalculator) TERA(p domain.DerivedProfile) domain.RetirementScenario {
	if ac.Policy.TERAReduction == domain.TERAReductionMonthly {
		return ac.teraMonthly(p)
	}
	return ac.teraAnnual(p)
}

func (ac *AnnuityCalculator) teraAnnual(p domain.DerivedProfile) domain.RetirementScenario {
	full := ac.Policy.TERAFullServiceYears
	yearsUnder := max(0, full-p.YearsOfService)
	reduction := decimal.NewFromInt(int64(yearsUnder)).Mul(ac.Policy.TERAAnnualRate)
	factor := one.Sub(reduction)

	s := ac.compute(domain.KindTERA, p.HighThreeAverage, p.YearsOfService, factor)
	s.Formula = fmt.Sprintf("High-Three Average × Years of Service × (%s × (1 - Reduction))", ac.basePercent())
	s.Steps = ac.amountSteps(s, []domain.CalculationStep{
		domain.ValueStep(fmt.Sprintf("Years Under %d", full), domain.Count(yearsUnder)),
		domain.ValueStep("Reduction", domain.Percent(reduction, 1)),
		domain.ValueStep("Effective Multiplier", domain.Percent(s.EffectiveMultiplier, 3)),
	})

	maxShortfall := full - ac.Policy.TERAMinimumYears
	maxReduction := decimal.NewFromInt(int64(maxShortfall)).Mul(ac.Policy.TERAAnnualRate)
	s.Notes = []string{
		"Based on Temporary Early Retirement Authority (TERA) formula",
		fmt.Sprintf("%s%% reduction per year under %d years of service", ac.Policy.TERAAnnualRate.Mul(hundred).String(), full),
		fmt.Sprintf("Maximum reduction of %s%% for %d years under %d", maxReduction.Mul(hundred).String(), maxShortfall, full),
	}
	s.Notes = append(s.Notes, ac.teraAgeNote()...)
	s.Notes = append(s.Notes, noteRoundedAnnual)
	s.Citations = []string{citeFSPS, citeBasicAnnuity, citeTemporaryER}
	return s
}

func (ac *AnnuityCalculator) teraMonthly(p domain.DerivedProfile) domain.RetirementScenario {
	fullMonths := ac.Policy.TERAFullServiceYears * 12
	monthsUnder := max(0, fullMonths-p.YearsOfService*12)
	// multiply before dividing so whole-year shortfalls stay exact
	reduction := decimal.NewFromInt(int64(monthsUnder)).Mul(ac.Policy.TERAMonthlyRate).Div(twelve)
	factor := one.Sub(reduction)

	s := ac.compute(domain.KindTERA, p.HighThreeAverage, p.YearsOfService, factor)
	rate := ac.Policy.TERAMonthlyRate.String()
	s.Formula = fmt.Sprintf("High-Three Average × Years of Service × %s × (1 - (m × (%s × (1/12))))", ac.basePercent(), rate)
	s.Steps = ac.amountSteps(s, []domain.CalculationStep{
		domain.ValueStep(fmt.Sprintf("Months Under %d", ac.Policy.TERAFullServiceYears), domain.Count(monthsUnder)),
		domain.ValueStep("Reduction Factor", domain.Factor(factor, 6)),
	})
	s.Notes = []string{
		"Based on Temporary Early Retirement Authority (TERA) formula",
		fmt.Sprintf("Reduction factor = 1 - (months under %d × (%s × (1/12)))", ac.Policy.TERAFullServiceYears, rate),
	}
	s.Notes = append(s.Notes, ac.teraAgeNote()...)
	s.Notes = append(s.Notes, noteRoundedAnnual)
	s.Citations = []string{citeFSPS, citeBasicAnnuity, citeTemporaryER}
	return s
}

func (ac *AnnuityCalculator) teraAgeNote() []string {
	notes := []string{"Requires VERA/TERA offering"}
	if ac.Policy.TERAMaximumAge > 0 {
		notes = append(notes, fmt.Sprintf("Must be under age %d", ac.Policy.TERAMaximumAge))
	}
	return notes
}

// MRAPlus10 applies a permanent reduction for each year the retiree is under
// the unreduced commencement age.
func (ac *AnnuityCalculator) MRAPlus10(p domain.DerivedProfile) domain.RetirementScenario {
	unreduced := ac.Policy.MRAUnreducedAge
	yearsUnder := max(0, unreduced-p.Age)
	reduction := decimal.NewFromInt(int64(yearsUnder)).Mul(ac.Policy.MRAReductionPerYear)
	factor := one.Sub(reduction)

	s := ac.compute(domain.KindMRAPlus10, p.HighThreeAverage, p.YearsOfService, factor)
	s.CommencementAge = p.Age
	s.Formula = fmt.Sprintf("High-Three Average × Years of Service × (%s × (1 - Age Reduction))", ac.basePercent())
	s.Steps = ac.amountSteps(s, []domain.CalculationStep{
		domain.ValueStep(fmt.Sprintf("Years Under %d", unreduced), domain.Count(yearsUnder)),
		domain.ValueStep("Age Reduction", domain.Percent(reduction, 1)),
		domain.ValueStep("Effective Multiplier", domain.Percent(s.EffectiveMultiplier, 3)),
	})
	s.Notes = []string{
		fmt.Sprintf("%s%% reduction per year under age %d", ac.Policy.MRAReductionPerYear.Mul(hundred).String(), unreduced),
		fmt.Sprintf("Reduction can be eliminated by waiting until age %d", unreduced),
		"Requires MRA+10 eligibility",
		noteRoundedAnnual,
	}
	s.Citations = []string{citeFSPS, citeBasicAnnuity}
	return s
}

// Deferred is the unreduced annuity payable from the commencement age
func (ac *AnnuityCalculator) Deferred(p domain.DerivedProfile) domain.RetirementScenario {
	s := ac.compute(domain.KindDeferred, p.HighThreeAverage, p.YearsOfService, one)
	s.CommencementAge = ac.Policy.DeferredCommencementAge
	s.Formula = fmt.Sprintf("High-Three Average × Years of Service × %s", ac.basePercent())
	s.Steps = ac.amountSteps(s, nil)
	s.Notes = []string{
		"No age reduction applied",
		fmt.Sprintf("Can begin at age %d", ac.Policy.DeferredCommencementAge),
		"High-three average is frozen at separation",
		fmt.Sprintf("Requires at least %d years of service", ac.Policy.DeferredMinimumYears),
	}
	s.Citations = []string{citeFSPS, citeBasicAnnuity}
	return s
}

// compute applies the shared annuity formula: the unrounded annual amount is
// H3 × years × multiplier × factor, the annual is rounded to dollars and the
// monthly is the rounded annual over twelve, rounded to cents.
func (ac *AnnuityCalculator) compute(kind domain.RetirementKind, h3 money.Money, years int, factor decimal.Decimal) domain.RetirementScenario {
	effective := ac.Policy.BaseMultiplier.Mul(factor)
	unrounded := h3.Mul(decimal.NewFromInt(int64(years))).Mul(effective)
	annual := unrounded.RoundDollars()
	monthly := annual.PaidMonthly()

	return domain.RetirementScenario{
		Kind:                kind,
		MonthlyAmount:       monthly,
		AnnualAmount:        annual,
		UnroundedAnnual:     unrounded,
		HighThreeAverage:    h3,
		EffectiveYears:      years,
		BaseMultiplier:      ac.Policy.BaseMultiplier,
		EffectiveMultiplier: effective,
		ReductionFactor:     factor,
	}
}

// amountSteps appends the annual, rounded annual and monthly lines to any
// pathway specific preamble.
func (ac *AnnuityCalculator) amountSteps(s domain.RetirementScenario, preamble []domain.CalculationStep) []domain.CalculationStep {
	multiplier := domain.Factor(s.BaseMultiplier, 3)
	if !s.ReductionFactor.Equal(one) {
		multiplier = domain.Factor(s.EffectiveMultiplier, 4)
	}
	steps := append([]domain.CalculationStep{}, preamble...)
	return append(steps,
		domain.ExprStep("Annual Amount", domain.OpMultiply, domain.Currency(s.UnroundedAnnual),
			domain.Currency(s.HighThreeAverage), domain.Count(s.EffectiveYears), multiplier),
		domain.ValueStep("Rounded Annual", domain.Currency(s.AnnualAmount)),
		domain.ExprStep("Monthly Amount", domain.OpDivide, domain.Currency(s.MonthlyAmount),
			domain.Currency(s.AnnualAmount), domain.Count(12)),
	)
}

func (ac *AnnuityCalculator) basePercent() string {
	return ac.Policy.BaseMultiplier.Mul(hundred).String() + "%"
}
