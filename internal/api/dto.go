package api

import (
	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/internal/output"
)

// CalculationMetadata identifies one calculation request
type CalculationMetadata struct {
	CalculationID          string `json:"calculationId"`
	CalculationStartedAt   string `json:"calculationStartedAt"`
	CalculationCompletedAt string `json:"calculationCompletedAt"`
	CalculationDurationMs  int64  `json:"calculationDurationMs"`
	ReferenceVersion       string `json:"referenceVersion,omitempty"`
}

// CalculateResponse is the body of a successful POST /api/calculate
type CalculateResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculationMetadata"`
	output.View
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UnknownPlanResponse is returned when no rates exist for the plan and coverage
type UnknownPlanResponse struct {
	ErrorResponse
	Plan     string `json:"plan"`
	Coverage string `json:"coverage"`
}

// StepDTO is one selectable step of a grade
type StepDTO struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Salary string `json:"salary"`
}

// GradeDTO is a pay grade with its locality-adjusted step salaries
type GradeDTO struct {
	Grade       string    `json:"grade"`
	Label       string    `json:"label"`
	DefaultStep string    `json:"defaultStep,omitempty"`
	Steps       []StepDTO `json:"steps"`
}

// PlanDTO is a selectable health plan
type PlanDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OptionDTO is a value/label pair for a select list
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LocalityDTO describes the locality adjustment applied to salaries
type LocalityDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Rate  string `json:"rate"`
}

// ReferenceResponse carries everything the calculator form needs to render
type ReferenceResponse struct {
	Version          string         `json:"version"`
	Policy           string         `json:"policy"`
	Locality         LocalityDTO    `json:"locality"`
	Grades           []GradeDTO     `json:"grades"`
	Plans            []PlanDTO      `json:"plans"`
	CoverageTypes    []OptionDTO    `json:"coverageTypes"`
	States           []domain.State `json:"states"`
	LocalitySalaries []string       `json:"localitySalaries"`
}
