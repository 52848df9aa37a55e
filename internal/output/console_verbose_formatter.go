package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/fso-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full worked report: every formula,
// calculation step, note and citation.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(result *domain.BenefitsResult) ([]byte, error) {
	v := Present(result, nil)
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "DETAILED FOREIGN SERVICE BENEFITS ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "As of: %s\n\n", v.AsOf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range v.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	heading(&buf, "SERVICE SUMMARY")
	fmt.Fprintf(&buf, "Current Age:            %d\n", v.Profile.Age)
	fmt.Fprintf(&buf, "Years of Service:       %d\n", v.Profile.YearsOfService)
	fmt.Fprintf(&buf, "Service Duration:       %s\n", v.Service.ServiceDuration)
	if v.Service.SickLeaveService != "" {
		fmt.Fprintf(&buf, "Sick Leave Credit:      %s\n", v.Service.SickLeaveService)
	}
	fmt.Fprintf(&buf, "Total Service:          %s\n", v.Service.TotalService)
	fmt.Fprintf(&buf, "Minimum Retirement Age: %s\n", v.Service.MinimumRetirementAge)
	fmt.Fprintf(&buf, "Base Salary:            %s\n", v.Profile.BaseSalary)
	fmt.Fprintf(&buf, "High-3 Average:         %s\n", v.Service.HighThree)
	writeCalculation(&buf, v.Service.HighThreeCalculation)
	bullets(&buf, "Notes", v.Service.Notes)
	fmt.Fprintln(&buf)

	heading(&buf, "RETIREMENT OPTIONS")
	if len(v.Scenarios) == 0 {
		fmt.Fprintln(&buf, "No retirement annuity is available with the information provided.")
		fmt.Fprintln(&buf)
	}
	for i, s := range v.Scenarios {
		fmt.Fprintf(&buf, "OPTION %d: %s\n", i+1, s.Type)
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		fmt.Fprintf(&buf, "Monthly: %s\n", s.Monthly)
		fmt.Fprintf(&buf, "Annual:  %s\n", s.Annual)
		if s.CommencementAge > 0 {
			fmt.Fprintf(&buf, "Payable at age %d\n", s.CommencementAge)
		}
		writeCalculation(&buf, s.Calculation)
		bullets(&buf, "Notes", s.Notes)
		bullets(&buf, "References", s.Citations)
		fmt.Fprintln(&buf)
	}

	heading(&buf, "SEVERANCE PAY")
	fmt.Fprintf(&buf, "Total: %s\n", v.Severance.Total)
	for _, in := range v.Severance.Installments {
		fmt.Fprintf(&buf, "  %d installment: %s\n", in.Year, in.Amount)
	}
	writeCalculation(&buf, v.Severance.Calculation)
	bullets(&buf, "Notes", v.Severance.Notes)
	bullets(&buf, "References", v.Severance.Citations)
	fmt.Fprintln(&buf)

	h := v.Health
	heading(&buf, "HEALTH INSURANCE COMPARISON")
	fmt.Fprintf(&buf, "Current Plan: %s (%s)\n", h.CurrentPlan.Name, h.CurrentPlan.CoverageType)
	fmt.Fprintf(&buf, "  Employee Share: %s / month\n", h.CurrentPlan.EmployeeMonthly)
	fmt.Fprintf(&buf, "  Employer Share: %s / month\n", h.CurrentPlan.EmployerMonthly)
	fmt.Fprintf(&buf, "  Total Premium:  %s / month\n", h.CurrentPlan.TotalMonthly)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "COBRA: %s / month, %s / year, %s over %d months\n", h.COBRA.Monthly, h.COBRA.Annual, h.COBRA.TotalCost, h.COBRA.Duration)
	writeCalculation(&buf, h.COBRA.Calculation)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "ACA Marketplace (%s, %s): %s / month, %s / year\n", h.ACA.PlanName, h.State, h.ACA.Monthly, h.ACA.Annual)
	writeCalculation(&buf, h.ACA.Calculation)
	bullets(&buf, "Notes", h.Notes)
	bullets(&buf, "References", h.Citations)
	return buf.Bytes(), nil
}

func heading(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
}

func writeCalculation(buf *bytes.Buffer, c CalculationView) {
	if c.Formula != "" {
		fmt.Fprintf(buf, "Formula: %s\n", c.Formula)
	}
	for _, s := range c.Steps {
		fmt.Fprintf(buf, "  %s\n", s)
	}
}

func bullets(buf *bytes.Buffer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(buf, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(buf, "• %s\n", it)
	}
}
