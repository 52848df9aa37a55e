package output

import (
	"github.com/rpgo/fso-calculator/internal/domain"
)

// View is a BenefitsResult with every amount rendered for display. It is
// what the browser form, the API and the text formatters show.
type View struct {
	AsOf        string         `json:"asOf"`
	Policy      string         `json:"policy"`
	Assumptions []string       `json:"assumptions"`
	UserInputs  InputView      `json:"userInputs"`
	Profile     ProfileView    `json:"profile"`
	Scenarios   []ScenarioView `json:"retirementScenarios"`
	Severance   SeveranceView  `json:"severance"`
	Health      HealthView     `json:"health"`
	Service     ServiceView    `json:"serviceDetails"`
}

// InputView echoes the submitted values
type InputView struct {
	CurrentAge               int    `json:"currentAge"`
	YearsOfService           int    `json:"yearsOfService"`
	ServiceComputationDate   string `json:"serviceComputationDate,omitempty"`
	IsEarlyRetirementOffered bool   `json:"isEarlyRetirementOffered"`
	Grade                    string `json:"fsGrade"`
	Step                     string `json:"fsStep"`
	HealthPlan               string `json:"currentPlan"`
	CoverageType             string `json:"coverageType"`
	State                    string `json:"state"`
	SickLeaveHours           int    `json:"sickLeaveBalance,omitempty"`
}

// ProfileView shows the derived quantities
type ProfileView struct {
	Age                  int             `json:"age"`
	YearsOfService       int             `json:"yearsOfService"`
	BaseSalary           string          `json:"baseSalary"`
	HighThreeAverage     string          `json:"highThreeAverage"`
	MinimumRetirementAge string          `json:"minimumRetirementAge"`
	Eligibility          map[string]bool `json:"eligibility"`
}

// CalculationView is a formula with its worked steps
type CalculationView struct {
	Formula string   `json:"formula"`
	Steps   []string `json:"steps"`
}

// ScenarioView is one retirement pathway for display
type ScenarioView struct {
	Type            string          `json:"type"`
	Monthly         string          `json:"monthly"`
	Annual          string          `json:"annual"`
	CommencementAge int             `json:"commencementAge,omitempty"`
	Calculation     CalculationView `json:"calculation"`
	Notes           []string        `json:"notes"`
	Citations       []string        `json:"citations,omitempty"`
}

// InstallmentView is one severance payment
type InstallmentView struct {
	Year   int    `json:"year"`
	Amount string `json:"amount"`
}

// SeveranceView is the severance estimate for display
type SeveranceView struct {
	Total        string            `json:"total"`
	BaseSalary   string            `json:"baseSalary"`
	MonthlyBase  string            `json:"monthlyBase"`
	Capped       bool              `json:"capped"`
	Installments []InstallmentView `json:"installments"`
	Calculation  CalculationView   `json:"calculation"`
	Notes        []string          `json:"notes"`
	Citations    []string          `json:"citations,omitempty"`
}

// PlanCostView is the monthly cost of the current plan
type PlanCostView struct {
	Name            string `json:"name"`
	CoverageType    string `json:"coverageType"`
	Biweekly        string `json:"biweekly"`
	EmployeeMonthly string `json:"employeeMonthly"`
	EmployerMonthly string `json:"employerMonthly"`
	TotalMonthly    string `json:"totalMonthly"`
}

// COBRAView is the COBRA estimate for display
type COBRAView struct {
	Monthly     string          `json:"monthly"`
	Annual      string          `json:"annual"`
	Duration    int             `json:"duration"`
	TotalCost   string          `json:"totalCost"`
	Calculation CalculationView `json:"calculation"`
}

// ACAView is the marketplace estimate for display
type ACAView struct {
	Monthly     string          `json:"monthly"`
	Annual      string          `json:"annual"`
	PlanName    string          `json:"planName"`
	TotalCost   string          `json:"totalCost"`
	StateFactor string          `json:"stateFactor"`
	Calculation CalculationView `json:"calculation"`
}

// HealthView compares the three coverage options
type HealthView struct {
	State       string       `json:"state"`
	StateName   string       `json:"stateName,omitempty"`
	CurrentPlan PlanCostView `json:"fehb"`
	COBRA       COBRAView    `json:"cobra"`
	ACA         ACAView      `json:"aca"`
	Notes       []string     `json:"notes"`
	Citations   []string     `json:"citations,omitempty"`
}

// ServiceView summarizes creditable service
type ServiceView struct {
	ServiceDuration      string          `json:"serviceDuration"`
	SickLeaveService     string          `json:"sickLeaveService,omitempty"`
	TotalService         string          `json:"totalService"`
	MinimumRetirementAge string          `json:"minimumRetirementAge"`
	HighThree            string          `json:"highThreeAverage"`
	HighThreeCalculation CalculationView `json:"highThreeCalculation"`
	Notes                []string        `json:"notes"`
}

// Present renders a result for display. stateName resolves a state code to
// its full name and may be nil.
func Present(r *domain.BenefitsResult, stateName func(string) string) View {
	v := View{
		AsOf:        r.AsOf.Format("2006-01-02"),
		Policy:      r.Policy.Name,
		Assumptions: GenerateAssumptions(r.Policy),
		UserInputs:  presentInput(r.Input),
		Profile: ProfileView{
			Age:                  r.Profile.Age,
			YearsOfService:       r.Profile.YearsOfService,
			BaseSalary:           FormatCurrency(r.Profile.BaseSalary.Decimal),
			HighThreeAverage:     FormatCurrency(r.Profile.HighThreeAverage.Decimal),
			MinimumRetirementAge: FormatAge(r.Profile.MinimumRetirementAge),
			Eligibility:          make(map[string]bool, len(domain.RetirementKinds)),
		},
		Scenarios: make([]ScenarioView, 0, len(r.Scenarios)),
		Severance: presentSeverance(r.Severance),
		Health:    presentHealth(r.Health),
		Service:   presentService(r.Service),
	}
	for _, k := range domain.RetirementKinds {
		v.Profile.Eligibility[string(k)] = r.Eligibility.Eligible(k)
	}
	for _, s := range r.Scenarios {
		v.Scenarios = append(v.Scenarios, presentScenario(s))
	}
	if stateName != nil {
		v.Health.StateName = stateName(r.Health.HomeState)
	}
	return v
}

func presentInput(in domain.CalculatorInput) InputView {
	iv := InputView{
		CurrentAge:               in.CurrentAge,
		YearsOfService:           in.YearsOfService,
		IsEarlyRetirementOffered: in.IsEarlyRetirementOffered,
		Grade:                    in.Grade,
		Step:                     in.Step,
		HealthPlan:               in.HealthPlanID,
		CoverageType:             string(in.CoverageTier),
		State:                    in.HomeState,
		SickLeaveHours:           in.SickLeaveHours,
	}
	if in.ServiceComputationDate != nil {
		iv.ServiceComputationDate = in.ServiceComputationDate.Format("2006-01-02")
	}
	return iv
}

func presentScenario(s domain.RetirementScenario) ScenarioView {
	return ScenarioView{
		Type:            string(s.Kind),
		Monthly:         FormatCurrency(s.MonthlyAmount.Decimal),
		Annual:          FormatCurrency(s.AnnualAmount.Decimal),
		CommencementAge: s.CommencementAge,
		Calculation:     CalculationView{Formula: s.Formula, Steps: FormatSteps(s.Steps)},
		Notes:           s.Notes,
		Citations:       s.Citations,
	}
}

func presentSeverance(s domain.SeveranceResult) SeveranceView {
	sv := SeveranceView{
		Total:        FormatCurrency(s.Total.Decimal),
		BaseSalary:   FormatCurrency(s.BaseSalary.Decimal),
		MonthlyBase:  FormatCurrency(s.MonthlyBase.Decimal),
		Capped:       s.Capped,
		Installments: make([]InstallmentView, len(s.Installments)),
		Calculation:  CalculationView{Formula: s.Formula, Steps: FormatSteps(s.Steps)},
		Notes:        s.Notes,
		Citations:    s.Citations,
	}
	for i, in := range s.Installments {
		sv.Installments[i] = InstallmentView{Year: in.Year, Amount: FormatCurrency(in.Amount.Decimal)}
	}
	return sv
}

func presentHealth(h domain.HealthComparisonResult) HealthView {
	return HealthView{
		State: h.HomeState,
		CurrentPlan: PlanCostView{
			Name:            h.PlanName,
			CoverageType:    h.CoverageTier.Label(),
			Biweekly:        FormatCurrency(h.Biweekly.Decimal),
			EmployeeMonthly: FormatCurrency(h.EmployeeMonthly.Decimal),
			EmployerMonthly: FormatCurrency(h.EmployerMonthly.Decimal),
			TotalMonthly:    FormatCurrency(h.TotalMonthly.Decimal),
		},
		COBRA: COBRAView{
			Monthly:     FormatCurrency(h.COBRA.Monthly.Decimal),
			Annual:      FormatCurrency(h.COBRA.Annual.Decimal),
			Duration:    h.COBRA.DurationMonths,
			TotalCost:   FormatCurrency(h.COBRA.TotalCost.Decimal),
			Calculation: CalculationView{Formula: h.COBRAFormula, Steps: FormatSteps(h.COBRASteps)},
		},
		ACA: ACAView{
			Monthly:     FormatCurrency(h.ACA.Monthly.Decimal),
			Annual:      FormatCurrency(h.ACA.Annual.Decimal),
			PlanName:    h.ACA.PlanName,
			TotalCost:   FormatCurrency(h.ACA.TotalCost.Decimal),
			StateFactor: h.StateFactor.StringFixed(2),
			Calculation: CalculationView{Formula: h.ACAFormula, Steps: FormatSteps(h.ACASteps)},
		},
		Notes:     h.Notes,
		Citations: h.Citations,
	}
}

func presentService(s domain.ServiceDetails) ServiceView {
	sv := ServiceView{
		ServiceDuration:      FormatDuration(s.ServiceDuration),
		TotalService:         FormatDuration(s.TotalService),
		MinimumRetirementAge: FormatAge(s.MinimumRetirementAge),
		HighThree:            FormatCurrency(s.HighThree.Amount.Decimal),
		HighThreeCalculation: CalculationView{Formula: s.HighThree.Formula, Steps: FormatSteps(s.HighThree.Steps)},
		Notes:                s.Notes,
	}
	if s.SickLeaveService != nil {
		sv.SickLeaveService = FormatDuration(*s.SickLeaveService)
	}
	return sv
}
