package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TERAReductionMethod selects how the TERA annuity is reduced for service under 20 years
type TERAReductionMethod string

const (
	// TERAReductionMonthly reduces by TERAMonthlyRate/12 for each month under 20 years
	TERAReductionMonthly TERAReductionMethod = "monthly"
	// TERAReductionAnnual reduces by TERAAnnualRate for each whole year under 20 years
	TERAReductionAnnual TERAReductionMethod = "annual"
)

const (
	PolicyCurrent = "current"
	PolicyLegacy  = "legacy"
)

// RetirementPolicy holds the thresholds and rates that vary between policy
// versions. The two published calculator variants disagree on the VERA
// minimum age and on the TERA reduction; both are available as presets.
type RetirementPolicy struct {
	Name string `yaml:"name" json:"name"`

	BaseMultiplier decimal.Decimal `yaml:"base_multiplier" json:"baseMultiplier"`

	VERAMinimumAge   int `yaml:"vera_minimum_age" json:"veraMinimumAge"`
	VERAMinimumYears int `yaml:"vera_minimum_years" json:"veraMinimumYears"`

	TERAMinimumYears int `yaml:"tera_minimum_years" json:"teraMinimumYears"`
	// TERAMaximumAge is exclusive; zero means no age cap
	TERAMaximumAge       int                 `yaml:"tera_maximum_age" json:"teraMaximumAge"`
	TERAFullServiceYears int                 `yaml:"tera_full_service_years" json:"teraFullServiceYears"`
	TERAReduction        TERAReductionMethod `yaml:"tera_reduction" json:"teraReduction"`
	TERAMonthlyRate      decimal.Decimal     `yaml:"tera_monthly_rate" json:"teraMonthlyRate"`
	TERAAnnualRate       decimal.Decimal     `yaml:"tera_annual_rate" json:"teraAnnualRate"`

	MRAMinimumYears     int             `yaml:"mra_minimum_years" json:"mraMinimumYears"`
	MRAUnreducedAge     int             `yaml:"mra_unreduced_age" json:"mraUnreducedAge"`
	MRAReductionPerYear decimal.Decimal `yaml:"mra_reduction_per_year" json:"mraReductionPerYear"`

	DeferredMinimumYears    int `yaml:"deferred_minimum_years" json:"deferredMinimumYears"`
	DeferredCommencementAge int `yaml:"deferred_commencement_age" json:"deferredCommencementAge"`
}

// CurrentPolicy is the variant served by the public calculator: VERA from
// age 43, TERA without an age cap and a 2% reduction per year under 20.
func CurrentPolicy() RetirementPolicy {
	return RetirementPolicy{
		Name:                    PolicyCurrent,
		BaseMultiplier:          decimal.NewFromFloat(0.017),
		VERAMinimumAge:          43,
		VERAMinimumYears:        15,
		TERAMinimumYears:        15,
		TERAMaximumAge:          0,
		TERAFullServiceYears:    20,
		TERAReduction:           TERAReductionAnnual,
		TERAMonthlyRate:         decimal.NewFromFloat(0.01),
		TERAAnnualRate:          decimal.NewFromFloat(0.02),
		MRAMinimumYears:         10,
		MRAUnreducedAge:         62,
		MRAReductionPerYear:     decimal.NewFromFloat(0.05),
		DeferredMinimumYears:    5,
		DeferredCommencementAge: 62,
	}
}

// LegacyPolicy is the earlier variant: VERA from age 50, TERA only under 50
// and reduced by 1% per year under 20, applied monthly.
func LegacyPolicy() RetirementPolicy {
	p := CurrentPolicy()
	p.Name = PolicyLegacy
	p.VERAMinimumAge = 50
	p.TERAMaximumAge = 50
	p.TERAReduction = TERAReductionMonthly
	return p
}

// PolicyByName returns a preset policy
func PolicyByName(name string) (RetirementPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyCurrent:
		return CurrentPolicy(), nil
	case PolicyLegacy:
		return LegacyPolicy(), nil
	default:
		return RetirementPolicy{}, fmt.Errorf("unknown retirement policy %q (want %s or %s)", name, PolicyCurrent, PolicyLegacy)
	}
}

// Validate checks that the policy can drive a calculation
func (p RetirementPolicy) Validate() error {
	if !p.BaseMultiplier.IsPositive() {
		return fmt.Errorf("base multiplier must be positive")
	}
	if p.TERAReduction != TERAReductionMonthly && p.TERAReduction != TERAReductionAnnual {
		return fmt.Errorf("tera reduction must be %q or %q, got %q", TERAReductionMonthly, TERAReductionAnnual, p.TERAReduction)
	}
	if p.TERAMonthlyRate.IsNegative() || p.TERAAnnualRate.IsNegative() || p.MRAReductionPerYear.IsNegative() {
		return fmt.Errorf("reduction rates cannot be negative")
	}
	if p.TERAFullServiceYears <= 0 {
		return fmt.Errorf("tera full service years must be positive")
	}
	if p.VERAMinimumYears < 0 || p.TERAMinimumYears < 0 || p.MRAMinimumYears < 0 || p.DeferredMinimumYears < 0 {
		return fmt.Errorf("minimum service years cannot be negative")
	}
	return nil
}
