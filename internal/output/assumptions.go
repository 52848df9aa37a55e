package output

import (
	"fmt"

	"github.com/rpgo/fso-calculator/internal/domain"
)

// GenerateAssumptions lists the policy parameters behind a calculation for
// the detailed console and HTML reports.
func GenerateAssumptions(p domain.RetirementPolicy) []string {
	out := []string{
		fmt.Sprintf("Policy preset: %s", p.Name),
		fmt.Sprintf("Annuity multiplier: %s per year of service", FormatPercentage(p.BaseMultiplier, 1)),
		fmt.Sprintf("VERA: age %d with %d years of service when offered", p.VERAMinimumAge, p.VERAMinimumYears),
	}
	tera := fmt.Sprintf("TERA: %d years of service when offered", p.TERAMinimumYears)
	if p.TERAMaximumAge > 0 {
		tera += fmt.Sprintf(", under age %d", p.TERAMaximumAge)
	}
	switch p.TERAReduction {
	case domain.TERAReductionMonthly:
		tera += fmt.Sprintf("; reduced %s a year, prorated by month, short of %d years", FormatPercentage(p.TERAMonthlyRate, 1), p.TERAFullServiceYears)
	default:
		tera += fmt.Sprintf("; reduced %s per year short of %d years", FormatPercentage(p.TERAAnnualRate, 1), p.TERAFullServiceYears)
	}
	out = append(out,
		tera,
		fmt.Sprintf("MRA+10: reduced %s per year under age %d", FormatPercentage(p.MRAReductionPerYear, 1), p.MRAUnreducedAge),
		fmt.Sprintf("Deferred: %d years of service, payable at age %d", p.DeferredMinimumYears, p.DeferredCommencementAge),
		"Severance: one month of base salary per year of service, capped at one year's salary",
		"COBRA: full premium plus a 2% administrative fee for up to 18 months",
	)
	return out
}
