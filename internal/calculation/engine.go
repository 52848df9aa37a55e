package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
)

// Engine runs a complete benefits calculation. It holds only configuration
// set up before use, so one engine may serve concurrent calculations.
type Engine struct {
	Reference *domain.ReferenceData
	Policy    domain.RetirementPolicy
	// Now supplies the as-of date when Calculate is used; defaults to time.Now
	Now    func() time.Time
	Logger Logger
}

// NewEngine creates an engine over reference data. The reference policy is
// used when present, otherwise the current policy.
func NewEngine(ref *domain.ReferenceData) *Engine {
	policy := domain.CurrentPolicy()
	if ref != nil && ref.Policy.Name != "" {
		policy = ref.Policy
	}
	return &Engine{
		Reference: ref,
		Policy:    policy,
		Now:       time.Now,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// SetPolicy replaces the retirement policy after validating it
func (e *Engine) SetPolicy(p domain.RetirementPolicy) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid policy %q: %w", p.Name, err)
	}
	e.Policy = p
	return nil
}

// AsOf returns the date calculations are evaluated at
func (e *Engine) AsOf() time.Time {
	if e.Now == nil {
		return dateutil.StartOfDay(time.Now())
	}
	return dateutil.StartOfDay(e.Now())
}

// DeriveProfile computes the per-calculation quantities from the input.
// A service computation date takes precedence over entered years of service.
func (e *Engine) DeriveProfile(in domain.CalculatorInput, asOf time.Time) domain.DerivedProfile {
	age := max(0, in.CurrentAge)
	years := max(0, in.YearsOfService)
	if in.ServiceComputationDate != nil {
		years = dateutil.CompletedYearsOfService(*in.ServiceComputationDate, asOf)
	}

	base := BaseSalary(e.Reference, in.Grade, in.Step)
	salaryYears := ResolveSalaryYears(base, in.SalaryYears)
	birthYear := dateutil.BirthYear(age, asOf)

	p := domain.DerivedProfile{
		Age:                      age,
		BirthYear:                birthYear,
		YearsOfService:           years,
		BaseSalary:               base,
		SalaryYears:              salaryYears,
		HighThreeAverage:         HighThreeAverage(salaryYears),
		MinimumRetirementAge:     dateutil.MinimumRetirementAgeForBirthYear(birthYear),
		MonthsOfService:          years * 12,
		IsEarlyRetirementOffered: in.IsEarlyRetirementOffered,
		EarlyRetirementYears:     years,
		EarlyRetirementAge:       age,
	}
	if in.IsEarlyRetirementOffered {
		if in.EarlyRetirementYears > 0 {
			p.EarlyRetirementYears = in.EarlyRetirementYears
		}
		if in.EarlyRetirementAge > 0 {
			p.EarlyRetirementAge = in.EarlyRetirementAge
		}
	}
	p.EarlyRetirementMonths = p.EarlyRetirementYears * 12
	return p
}

// Calculate runs the calculation as of the engine clock
func (e *Engine) Calculate(in domain.CalculatorInput) (*domain.BenefitsResult, error) {
	return e.CalculateAt(in, e.AsOf())
}

// CalculateAt runs every eligibility predicate, computes the eligible
// scenarios in reporting order, and always computes severance, the health
// comparison and the service summary.
func (e *Engine) CalculateAt(in domain.CalculatorInput, asOf time.Time) (*domain.BenefitsResult, error) {
	if e.Reference == nil {
		return nil, errors.New("calculation engine has no reference data")
	}
	asOf = dateutil.StartOfDay(asOf)

	profile := e.DeriveProfile(in, asOf)
	elig := EvaluateEligibility(profile, e.Policy)
	e.Logger.Debugf("profile: age=%d service=%d base=%s h3=%s mra=%s eligible=%v",
		profile.Age, profile.YearsOfService, profile.BaseSalary, profile.HighThreeAverage,
		profile.MinimumRetirementAge.StringFixed(2), elig.Kinds())

	annuity := NewAnnuityCalculator(e.Policy)
	scenarios := make([]domain.RetirementScenario, 0, len(domain.RetirementKinds))
	for _, kind := range elig.Kinds() {
		s, err := annuity.Calculate(kind, profile)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	health, err := NewHealthComparator(e.Reference).Compare(in.HealthPlanID, in.CoverageTier, in.HomeState)
	if err != nil {
		e.Logger.Warnf("health comparison failed: %v", err)
		return nil, fmt.Errorf("health comparison: %w", err)
	}

	return &domain.BenefitsResult{
		AsOf:        asOf,
		Policy:      e.Policy,
		Input:       in,
		Profile:     profile,
		Eligibility: elig,
		Scenarios:   scenarios,
		Severance:   CalculateSeverance(profile.BaseSalary, profile.YearsOfService, asOf),
		Health:      health,
		Service:     ServiceSummary(in, profile, elig, asOf),
	}, nil
}
