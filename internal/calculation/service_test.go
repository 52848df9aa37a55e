package calculation

import (
	"testing"
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceSummary(t *testing.T) {
	scd := date(2000, time.January, 1)
	asOf := date(2025, time.January, 1)
	immediate := domain.Eligibility{Regular: true, Deferred: true}
	deferredOnly := domain.Eligibility{Deferred: true}

	tests := []struct {
		name          string
		input         domain.CalculatorInput
		years         int
		elig          domain.Eligibility
		expectedDur   dateutil.Duration
		expectedSick  *dateutil.Duration
		expectedTotal dateutil.Duration
	}{
		{
			name:          "scd with sick leave credited",
			input:         domain.CalculatorInput{ServiceComputationDate: &scd, SickLeaveHours: 2087},
			years:         25,
			elig:          immediate,
			expectedDur:   dateutil.Duration{Years: 25},
			expectedSick:  &dateutil.Duration{Months: 9},
			expectedTotal: dateutil.Duration{Years: 25, Months: 9},
		},
		{
			name:          "sick leave ignored without immediate annuity",
			input:         domain.CalculatorInput{ServiceComputationDate: &scd, SickLeaveHours: 2087},
			years:         25,
			elig:          deferredOnly,
			expectedDur:   dateutil.Duration{Years: 25},
			expectedTotal: dateutil.Duration{Years: 25},
		},
		{
			name:          "entered years without scd",
			input:         domain.CalculatorInput{YearsOfService: 22},
			years:         22,
			elig:          immediate,
			expectedDur:   dateutil.Duration{Years: 22},
			expectedTotal: dateutil.Duration{Years: 22},
		},
		{
			name:          "sick leave months carry into years",
			input:         domain.CalculatorInput{YearsOfService: 20, SickLeaveHours: 3000},
			years:         20,
			elig:          immediate,
			expectedDur:   dateutil.Duration{Years: 20},
			expectedSick:  &dateutil.Duration{Years: 1},
			expectedTotal: dateutil.Duration{Years: 21},
		},
		{
			name:          "small balance rounds to zero months",
			input:         domain.CalculatorInput{YearsOfService: 20, SickLeaveHours: 120},
			years:         20,
			elig:          immediate,
			expectedDur:   dateutil.Duration{Years: 20},
			expectedSick:  &dateutil.Duration{},
			expectedTotal: dateutil.Duration{Years: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DerivedProfile{YearsOfService: tt.years}
			s := ServiceSummary(tt.input, p, tt.elig, asOf)
			assert.Equal(t, tt.expectedDur, s.ServiceDuration)
			assert.Equal(t, tt.expectedSick, s.SickLeaveService)
			assert.Equal(t, tt.expectedTotal, s.TotalService)
			require.Len(t, s.Notes, 3)
		})
	}
}
