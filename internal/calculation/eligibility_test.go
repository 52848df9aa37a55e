package calculation

import (
	"testing"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

func profile(age, years int, birthYear int, offered bool) domain.DerivedProfile {
	return domain.DerivedProfile{
		Age:                      age,
		BirthYear:                birthYear,
		YearsOfService:           years,
		MinimumRetirementAge:     dateutil.MinimumRetirementAgeForBirthYear(birthYear),
		IsEarlyRetirementOffered: offered,
		EarlyRetirementYears:     years,
		EarlyRetirementAge:       age,
	}
}

func TestEvaluateEligibility(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.DerivedProfile
		policy   domain.RetirementPolicy
		expected domain.Eligibility
	}{
		{
			name:     "age 60 with 25 years",
			profile:  profile(60, 25, 1965, false),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{Regular: true, MRAPlus10: true, Deferred: true},
		},
		{
			name:     "age 50 with 20 years",
			profile:  profile(50, 20, 1975, false),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{Regular: true, Deferred: true},
		},
		{
			name:     "age 60 with 5 years",
			profile:  profile(60, 5, 1965, false),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{Regular: true, Deferred: true},
		},
		{
			name:     "age 59 with 19 years",
			profile:  profile(59, 19, 1966, false),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{MRAPlus10: true, Deferred: true},
		},
		{
			name:     "early retirement offered at 45 with 15 years",
			profile:  profile(45, 15, 1980, true),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{VERA: true, TERA: true, Deferred: true},
		},
		{
			name:     "early retirement offered at 45 under legacy policy",
			profile:  profile(45, 15, 1980, true),
			policy:   domain.LegacyPolicy(),
			expected: domain.Eligibility{TERA: true, Deferred: true},
		},
		{
			name:     "legacy TERA closed at 50",
			profile:  profile(52, 18, 1973, true),
			policy:   domain.LegacyPolicy(),
			expected: domain.Eligibility{VERA: true, Deferred: true},
		},
		{
			name:     "current TERA has no age cap",
			profile:  profile(52, 18, 1973, true),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{VERA: true, TERA: true, Deferred: true},
		},
		{
			name:     "early retirement not offered",
			profile:  profile(58, 15, 1964, false),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{MRAPlus10: true, Deferred: true},
		},
		{
			name:     "below MRA",
			profile:  profile(57, 15, 1964, false),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{Deferred: true},
		},
		{
			name:     "nothing under five years",
			profile:  profile(40, 4, 1985, true),
			policy:   domain.CurrentPolicy(),
			expected: domain.Eligibility{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateEligibility(tt.profile, tt.policy))
		})
	}
}

func TestEvaluateEligibility_VERAUsesEarlyRetirementOverrides(t *testing.T) {
	p := profile(40, 12, 1985, true)
	assert.False(t, EvaluateEligibility(p, domain.CurrentPolicy()).VERA)

	p.EarlyRetirementAge = 43
	p.EarlyRetirementYears = 15
	elig := EvaluateEligibility(p, domain.CurrentPolicy())
	assert.True(t, elig.VERA)
	assert.False(t, elig.TERA, "TERA counts actual service, not the override")
}

func TestEligibility_KindsOrder(t *testing.T) {
	elig := domain.Eligibility{Deferred: true, Regular: true, TERA: true}
	assert.Equal(t, []domain.RetirementKind{domain.KindRegular, domain.KindTERA, domain.KindDeferred}, elig.Kinds())
	assert.True(t, elig.Immediate())
	assert.False(t, domain.Eligibility{MRAPlus10: true, Deferred: true}.Immediate())
}
