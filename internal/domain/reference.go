package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ReferenceData is the static table set consumed by the calculator: the pay
// schedule, locality rate, health plan rates and state factors. It is loaded
// once and shared read-only between calculations.
type ReferenceData struct {
	Version           string                     `yaml:"version" json:"version"`
	Locality          Locality                   `yaml:"locality" json:"locality"`
	SalarySchedule    []PayGrade                 `yaml:"salary_schedule" json:"salarySchedule"`
	HealthPlans       []HealthPlan               `yaml:"health_plans" json:"healthPlans"`
	StateFactors      map[string]decimal.Decimal `yaml:"state_factors" json:"stateFactors"`
	StateExplanations map[string]string          `yaml:"state_explanations" json:"stateExplanations"`
	States            []State                    `yaml:"states" json:"states"`
	Policy            RetirementPolicy           `yaml:"policy" json:"policy"`
}

// Locality is the geographic pay adjustment applied to the base schedule
type Locality struct {
	Code  string          `yaml:"code" json:"code"`
	Label string          `yaml:"label" json:"label"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// PayGrade is one row of the salary schedule. Regular grades list salaries
// by 1-based step number; senior grades use named ranks instead.
type PayGrade struct {
	Grade       string            `yaml:"grade" json:"grade"`
	Label       string            `yaml:"label" json:"label"`
	Steps       []decimal.Decimal `yaml:"steps,omitempty" json:"steps,omitempty"`
	NamedSteps  []NamedStep       `yaml:"named_steps,omitempty" json:"namedSteps,omitempty"`
	DefaultStep string            `yaml:"default_step,omitempty" json:"defaultStep,omitempty"`
	// SalaryRange lists published salaries not selectable as steps
	SalaryRange []decimal.Decimal `yaml:"salary_range,omitempty" json:"salaryRange,omitempty"`
}

// NamedStep is a senior rank with a single base salary
type NamedStep struct {
	Code   string          `yaml:"code" json:"code"`
	Label  string          `yaml:"label" json:"label"`
	Salary decimal.Decimal `yaml:"salary" json:"salary"`
}

// HasNamedSteps reports whether the grade uses named ranks
func (g PayGrade) HasNamedSteps() bool {
	return len(g.NamedSteps) > 0
}

// StepSalary returns the unadjusted salary for a step. Named-step grades fall
// back to DefaultStep for an unknown rank; numbered grades return zero for an
// unknown or unparseable step.
func (g PayGrade) StepSalary(step string) decimal.Decimal {
	step = strings.TrimSpace(step)
	if g.HasNamedSteps() {
		if s, ok := g.namedStep(step); ok {
			return s.Salary
		}
		if s, ok := g.namedStep(g.DefaultStep); ok {
			return s.Salary
		}
		return decimal.Zero
	}

	n, err := strconv.Atoi(step)
	if err != nil || n < 1 || n > len(g.Steps) {
		return decimal.Zero
	}
	return g.Steps[n-1]
}

func (g PayGrade) namedStep(code string) (NamedStep, bool) {
	for _, s := range g.NamedSteps {
		if s.Code == code {
			return s, true
		}
	}
	return NamedStep{}, false
}

// PlanRate is the employee share of a plan premium
type PlanRate struct {
	Biweekly decimal.Decimal `yaml:"biweekly" json:"biweekly"`
	Monthly  decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// HealthPlan is one FEHB plan with its employee rates per coverage tier
type HealthPlan struct {
	ID              string                    `yaml:"id" json:"id"`
	Name            string                    `yaml:"name" json:"name"`
	MarketplaceName string                    `yaml:"marketplace_name" json:"marketplaceName"`
	Rates           map[CoverageTier]PlanRate `yaml:"rates" json:"rates"`
}

// State is a state or district the employee may relocate to
type State struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Grade finds a pay grade by code
func (r *ReferenceData) Grade(code string) (PayGrade, bool) {
	for _, g := range r.SalarySchedule {
		if g.Grade == code {
			return g, true
		}
	}
	return PayGrade{}, false
}

// Plan finds a health plan by id
func (r *ReferenceData) Plan(id string) (HealthPlan, bool) {
	for _, p := range r.HealthPlans {
		if p.ID == id {
			return p, true
		}
	}
	return HealthPlan{}, false
}

// PlanRate finds the employee rate for a plan and coverage tier
func (r *ReferenceData) PlanRate(id string, tier CoverageTier) (HealthPlan, PlanRate, bool) {
	plan, ok := r.Plan(id)
	if !ok {
		return HealthPlan{}, PlanRate{}, false
	}
	rate, ok := plan.Rates[tier]
	return plan, rate, ok
}

// StateFactor returns the marketplace cost factor for a state and whether it was listed
func (r *ReferenceData) StateFactor(code string) (decimal.Decimal, bool) {
	f, ok := r.StateFactors[code]
	if !ok {
		return decimal.NewFromInt(1), false
	}
	return f, true
}

// StateName returns the display name of a state code, or the code itself
func (r *ReferenceData) StateName(code string) string {
	for _, s := range r.States {
		if s.Code == code {
			return s.Name
		}
	}
	return code
}

// LocalitySalaries returns every schedule salary adjusted for locality,
// rounded to whole dollars, de-duplicated and sorted ascending.
func (r *ReferenceData) LocalitySalaries() []decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(r.Locality.Rate)
	seen := make(map[string]bool)
	var out []decimal.Decimal
	add := func(d decimal.Decimal) {
		adj := d.Mul(factor).Round(0)
		if seen[adj.String()] {
			return
		}
		seen[adj.String()] = true
		out = append(out, adj)
	}
	for _, g := range r.SalarySchedule {
		for _, s := range g.Steps {
			add(s)
		}
		for _, s := range g.NamedSteps {
			add(s.Salary)
		}
		for _, s := range g.SalaryRange {
			add(s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LessThan(out[j]) })
	return out
}
