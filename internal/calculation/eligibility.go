package calculation

import (
	"github.com/rpgo/fso-calculator/internal/domain"
)

// Regular retirement thresholds are statutory and do not vary by policy
const (
	regularEarlyAge     = 50
	regularEarlyService = 20
	regularLateAge      = 60
	regularLateService  = 5
)

// EvaluateEligibility runs every pathway predicate against the profile.
// Each predicate is independent of the others.
func EvaluateEligibility(p domain.DerivedProfile, policy domain.RetirementPolicy) domain.Eligibility {
	return domain.Eligibility{
		Regular:   isRegularEligible(p),
		VERA:      isVERAEligible(p, policy),
		TERA:      isTERAEligible(p, policy),
		MRAPlus10: isMRAPlus10Eligible(p, policy),
		Deferred:  p.YearsOfService >= policy.DeferredMinimumYears,
	}
}

func isRegularEligible(p domain.DerivedProfile) bool {
	return (p.Age >= regularEarlyAge && p.YearsOfService >= regularEarlyService) ||
		(p.Age >= regularLateAge && p.YearsOfService >= regularLateService)
}

func isVERAEligible(p domain.DerivedProfile, policy domain.RetirementPolicy) bool {
	if !p.IsEarlyRetirementOffered {
		return false
	}
	return p.EarlyRetirementAge >= policy.VERAMinimumAge &&
		p.EarlyRetirementYears >= policy.VERAMinimumYears
}

func isTERAEligible(p domain.DerivedProfile, policy domain.RetirementPolicy) bool {
	if !p.IsEarlyRetirementOffered {
		return false
	}
	if policy.TERAMaximumAge > 0 && p.Age >= policy.TERAMaximumAge {
		return false
	}
	return p.YearsOfService >= policy.TERAMinimumYears
}

func isMRAPlus10Eligible(p domain.DerivedProfile, policy domain.RetirementPolicy) bool {
	return p.MeetsMinimumRetirementAge() && p.YearsOfService >= policy.MRAMinimumYears
}
