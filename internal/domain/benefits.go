package domain

import (
	"time"

	"github.com/rpgo/fso-calculator/pkg/dateutil"
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// RetirementKind identifies a retirement pathway
type RetirementKind string

const (
	KindRegular   RetirementKind = "Regular"
	KindVERA      RetirementKind = "VERA"
	KindTERA      RetirementKind = "TERA"
	KindMRAPlus10 RetirementKind = "MRA+10"
	KindDeferred  RetirementKind = "Deferred"
)

// RetirementKinds is the fixed order in which scenarios are reported
var RetirementKinds = []RetirementKind{KindRegular, KindVERA, KindTERA, KindMRAPlus10, KindDeferred}

// Eligibility records the outcome of every pathway predicate. The predicates
// are independent; any combination may be true.
type Eligibility struct {
	Regular   bool `json:"regular"`
	VERA      bool `json:"vera"`
	TERA      bool `json:"tera"`
	MRAPlus10 bool `json:"mraPlus10"`
	Deferred  bool `json:"deferred"`
}

// Eligible returns the predicate result for a pathway
func (e Eligibility) Eligible(kind RetirementKind) bool {
	switch kind {
	case KindRegular:
		return e.Regular
	case KindVERA:
		return e.VERA
	case KindTERA:
		return e.TERA
	case KindMRAPlus10:
		return e.MRAPlus10
	case KindDeferred:
		return e.Deferred
	}
	return false
}

// Immediate reports whether an immediate annuity (Regular, VERA or TERA) is available
func (e Eligibility) Immediate() bool {
	return e.Regular || e.VERA || e.TERA
}

// Kinds returns the eligible pathways in reporting order
func (e Eligibility) Kinds() []RetirementKind {
	var kinds []RetirementKind
	for _, k := range RetirementKinds {
		if e.Eligible(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// RetirementScenario is the annuity estimate for one eligible pathway
type RetirementScenario struct {
	Kind            RetirementKind `json:"kind"`
	MonthlyAmount   money.Money    `json:"monthlyAmount"`
	AnnualAmount    money.Money    `json:"annualAmount"`
	UnroundedAnnual money.Money    `json:"unroundedAnnual"`

	HighThreeAverage    money.Money     `json:"highThreeAverage"`
	EffectiveYears      int             `json:"effectiveYears"`
	BaseMultiplier      decimal.Decimal `json:"baseMultiplier"`
	EffectiveMultiplier decimal.Decimal `json:"effectiveMultiplier"`
	ReductionFactor     decimal.Decimal `json:"reductionFactor"`
	CommencementAge     int             `json:"commencementAge,omitempty"`

	Formula   string            `json:"formula"`
	Steps     []CalculationStep `json:"steps"`
	Notes     []string          `json:"notes"`
	Citations []string          `json:"citations,omitempty"`
}

// Installment is one severance payment
type Installment struct {
	Year   int         `json:"year"`
	Amount money.Money `json:"amount"`
}

// SeveranceResult is the severance estimate
type SeveranceResult struct {
	BaseSalary     money.Money `json:"baseSalary"`
	MonthlyBase    money.Money `json:"monthlyBase"`
	YearsOfService int         `json:"yearsOfService"`
	Uncapped       money.Money `json:"uncapped"`
	Total          money.Money `json:"total"`
	Capped         bool        `json:"capped"`

	Installments []Installment     `json:"installments"`
	Formula      string            `json:"formula"`
	Steps        []CalculationStep `json:"steps"`
	Notes        []string          `json:"notes"`
	Citations    []string          `json:"citations,omitempty"`
}

// COBRAEstimate is continuation coverage at full premium plus surcharge
type COBRAEstimate struct {
	Monthly        money.Money `json:"monthly"`
	Annual         money.Money `json:"annual"`
	DurationMonths int         `json:"durationMonths"`
	TotalCost      money.Money `json:"totalCost"`
}

// MarketplaceEstimate is the ACA marketplace premium estimate
type MarketplaceEstimate struct {
	Monthly   money.Money `json:"monthly"`
	Annual    money.Money `json:"annual"`
	PlanName  string      `json:"planName"`
	TotalCost money.Money `json:"totalCost"`
}

// HealthComparisonResult compares the current plan with COBRA and the ACA marketplace
type HealthComparisonResult struct {
	PlanID       string       `json:"planId"`
	PlanName     string       `json:"planName"`
	CoverageTier CoverageTier `json:"coverageTier"`
	HomeState    string       `json:"homeState"`

	Biweekly        money.Money     `json:"biweekly"`
	EmployeeMonthly money.Money     `json:"employeeMonthly"`
	EmployerMonthly money.Money     `json:"employerMonthly"`
	TotalMonthly    money.Money     `json:"totalMonthly"`
	StateFactor     decimal.Decimal `json:"stateFactor"`

	COBRA COBRAEstimate       `json:"cobra"`
	ACA   MarketplaceEstimate `json:"aca"`

	COBRAFormula string            `json:"cobraFormula"`
	COBRASteps   []CalculationStep `json:"cobraSteps"`
	ACAFormula   string            `json:"acaFormula"`
	ACASteps     []CalculationStep `json:"acaSteps"`
	Notes        []string          `json:"notes"`
	Citations    []string          `json:"citations,omitempty"`
}

// HighThreeDetail explains the high-three average
type HighThreeDetail struct {
	Amount      money.Money       `json:"amount"`
	SalaryYears [3]money.Money    `json:"salaryYears"`
	Formula     string            `json:"formula"`
	Steps       []CalculationStep `json:"steps"`
}

// ServiceDetails summarizes creditable service for display
type ServiceDetails struct {
	ServiceDuration      dateutil.Duration  `json:"serviceDuration"`
	SickLeaveService     *dateutil.Duration `json:"sickLeaveService"`
	TotalService         dateutil.Duration  `json:"totalService"`
	MinimumRetirementAge decimal.Decimal    `json:"minimumRetirementAge"`
	HighThree            HighThreeDetail    `json:"highThree"`
	Notes                []string           `json:"notes"`
}

// BenefitsResult is the complete output of one calculation
type BenefitsResult struct {
	AsOf        time.Time              `json:"asOf"`
	Policy      RetirementPolicy       `json:"policy"`
	Input       CalculatorInput        `json:"input"`
	Profile     DerivedProfile         `json:"profile"`
	Eligibility Eligibility            `json:"eligibility"`
	Scenarios   []RetirementScenario   `json:"retirementScenarios"`
	Severance   SeveranceResult        `json:"severance"`
	Health      HealthComparisonResult `json:"health"`
	Service     ServiceDetails         `json:"serviceDetails"`
}

// Scenario returns the scenario for a pathway, if it was eligible
func (r *BenefitsResult) Scenario(kind RetirementKind) (RetirementScenario, bool) {
	for _, s := range r.Scenarios {
		if s.Kind == kind {
			return s, true
		}
	}
	return RetirementScenario{}, false
}
