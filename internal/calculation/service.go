package calculation

import (
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
)

// ServiceSummary assembles the service statistics shown alongside the
// scenarios. Sick leave is credited only when an immediate annuity is
// available; it never changes the annuity amounts.
func ServiceSummary(in domain.CalculatorInput, p domain.DerivedProfile, elig domain.Eligibility, asOf time.Time) domain.ServiceDetails {
	duration := dateutil.Duration{Years: p.YearsOfService}
	if in.ServiceComputationDate != nil {
		duration = dateutil.ServiceDuration(*in.ServiceComputationDate, asOf)
	}

	var sick *dateutil.Duration
	if in.SickLeaveHours > 0 && elig.Immediate() {
		credit := dateutil.SickLeaveCredit(in.SickLeaveHours)
		sick = &credit
	}

	total := duration
	if sick != nil {
		total = duration.Add(*sick)
	}

	return domain.ServiceDetails{
		ServiceDuration:      duration,
		SickLeaveService:     sick,
		TotalService:         total,
		MinimumRetirementAge: p.MinimumRetirementAge,
		HighThree:            HighThree(p.SalaryYears),
		Notes: []string{
			"Sick leave is only included in service calculation if immediate retirement is available (Regular, VERA, or TERA)",
			"Sick leave hours are converted to days and rounded to the nearest month",
			"Days are not included in the final calculation as they are rounded to months",
		},
	}
}
