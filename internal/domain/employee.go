package domain

import (
	"time"

	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CoverageTier is the health plan enrollment level
type CoverageTier string

const (
	CoverageSelf        CoverageTier = "self"
	CoverageSelfPlusOne CoverageTier = "self-plus-one"
	CoverageFamily      CoverageTier = "family"
)

// CoverageTiers lists the enrollment levels in display order
var CoverageTiers = []CoverageTier{CoverageSelf, CoverageSelfPlusOne, CoverageFamily}

// Label returns the display name for the coverage tier
func (c CoverageTier) Label() string {
	switch c {
	case CoverageSelf:
		return "Self Only"
	case CoverageSelfPlusOne:
		return "Self Plus One"
	case CoverageFamily:
		return "Self and Family"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known tiers
func (c CoverageTier) Valid() bool {
	switch c {
	case CoverageSelf, CoverageSelfPlusOne, CoverageFamily:
		return true
	}
	return false
}

// CalculatorInput is the normalized form submission for one calculation.
// Zero values mean "not supplied" for the optional fields.
type CalculatorInput struct {
	CurrentAge             int        `yaml:"current_age" json:"currentAge"`
	YearsOfService         int        `yaml:"years_of_service" json:"yearsOfService"`
	ServiceComputationDate *time.Time `yaml:"service_computation_date,omitempty" json:"serviceComputationDate,omitempty"`

	IsEarlyRetirementOffered bool `yaml:"early_retirement_offered" json:"isEarlyRetirementOffered"`
	EarlyRetirementYears     int  `yaml:"early_retirement_years,omitempty" json:"earlyRetirementYears,omitempty"`
	EarlyRetirementAge       int  `yaml:"early_retirement_age,omitempty" json:"earlyRetirementAge,omitempty"`

	Grade       string `yaml:"grade" json:"grade"`
	Step        string `yaml:"step" json:"step"`
	SalaryYears [3]int `yaml:"salary_years" json:"salaryYears"`

	HealthPlanID string       `yaml:"health_plan_id" json:"healthPlanId"`
	CoverageTier CoverageTier `yaml:"coverage_tier" json:"coverageTier"`
	HomeState    string       `yaml:"home_state" json:"homeState"`

	SickLeaveHours int `yaml:"sick_leave_hours,omitempty" json:"sickLeaveHours,omitempty"`
}

// DerivedProfile holds the quantities computed once per calculation from the
// input and the reference data. It is never modified after construction.
type DerivedProfile struct {
	Age            int `json:"age"`
	BirthYear      int `json:"birthYear"`
	YearsOfService int `json:"yearsOfService"`

	BaseSalary       money.Money    `json:"baseSalary"`
	SalaryYears      [3]money.Money `json:"salaryYears"`
	HighThreeAverage money.Money    `json:"highThreeAverage"`

	// MinimumRetirementAge is fractional; 56 years 4 months is 56.333...
	MinimumRetirementAge decimal.Decimal `json:"minimumRetirementAge"`

	MonthsOfService int `json:"monthsOfService"`

	IsEarlyRetirementOffered bool `json:"isEarlyRetirementOffered"`
	EarlyRetirementYears     int  `json:"earlyRetirementYears"`
	EarlyRetirementAge       int  `json:"earlyRetirementAge"`
	EarlyRetirementMonths    int  `json:"earlyRetirementMonths"`
}

// MeetsMinimumRetirementAge reports whether the current age is at or past the MRA
func (p DerivedProfile) MeetsMinimumRetirementAge() bool {
	return decimal.NewFromInt(int64(p.Age)).GreaterThanOrEqual(p.MinimumRetirementAge)
}
