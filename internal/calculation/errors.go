package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/fso-calculator/internal/domain"
)

// ErrUnknownHealthPlan is returned when no rate exists for a plan and coverage tier
var ErrUnknownHealthPlan = errors.New("unknown health plan")

// UnknownPlanError carries the plan and tier that failed the rate lookup.
// It matches ErrUnknownHealthPlan with errors.Is.
type UnknownPlanError struct {
	Plan string
	Tier domain.CoverageTier
}

func (e *UnknownPlanError) Error() string {
	return fmt.Sprintf("no rates found for plan %s with coverage type %s", e.Plan, e.Tier)
}

func (e *UnknownPlanError) Is(target error) bool {
	return target == ErrUnknownHealthPlan
}
