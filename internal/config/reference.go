package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/fso-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidReference is wrapped by every reference data validation failure
var ErrInvalidReference = errors.New("invalid reference data")

//go:embed reference.yaml
var defaultReferenceYAML []byte

// DefaultReferenceYAML returns the embedded reference tables
func DefaultReferenceYAML() []byte {
	out := make([]byte, len(defaultReferenceYAML))
	copy(out, defaultReferenceYAML)
	return out
}

// DefaultReference parses the embedded reference tables
func DefaultReference() (*domain.ReferenceData, error) {
	return ParseReference(defaultReferenceYAML)
}

// LoadReferenceFile loads reference tables from a YAML file. An empty path
// returns the embedded defaults.
func LoadReferenceFile(filename string) (*domain.ReferenceData, error) {
	if filename == "" {
		return DefaultReference()
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file %s: %w", filename, err)
	}
	return ParseReference(data)
}

// ParseReference decodes and validates reference tables. A missing policy
// block selects the current policy.
func ParseReference(data []byte) (*domain.ReferenceData, error) {
	var ref domain.ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse reference YAML: %w", err)
	}
	if ref.Policy.Name == "" {
		ref.Policy = domain.CurrentPolicy()
	}
	if err := ValidateReference(&ref); err != nil {
		return nil, fmt.Errorf("reference validation failed: %w", err)
	}
	return &ref, nil
}

// ValidateReference checks the tables the calculator relies on
func ValidateReference(ref *domain.ReferenceData) error {
	if ref.Locality.Rate.IsNegative() {
		return fmt.Errorf("%w: locality rate cannot be negative", ErrInvalidReference)
	}

	if len(ref.SalarySchedule) == 0 {
		return fmt.Errorf("%w: salary schedule is empty", ErrInvalidReference)
	}
	grades := make(map[string]bool)
	for _, g := range ref.SalarySchedule {
		if err := validateGrade(g); err != nil {
			return err
		}
		if grades[g.Grade] {
			return fmt.Errorf("%w: duplicate grade %s", ErrInvalidReference, g.Grade)
		}
		grades[g.Grade] = true
	}

	if len(ref.HealthPlans) == 0 {
		return fmt.Errorf("%w: no health plans", ErrInvalidReference)
	}
	for _, p := range ref.HealthPlans {
		if err := validatePlan(p); err != nil {
			return err
		}
	}

	for state, f := range ref.StateFactors {
		if !f.IsPositive() {
			return fmt.Errorf("%w: state factor for %s must be positive", ErrInvalidReference, state)
		}
	}

	if err := ref.Policy.Validate(); err != nil {
		return fmt.Errorf("%w: policy %s: %v", ErrInvalidReference, ref.Policy.Name, err)
	}
	return nil
}

func validateGrade(g domain.PayGrade) error {
	if g.Grade == "" {
		return fmt.Errorf("%w: grade without a code", ErrInvalidReference)
	}
	if len(g.Steps) == 0 && len(g.NamedSteps) == 0 {
		return fmt.Errorf("%w: grade %s has no steps", ErrInvalidReference, g.Grade)
	}
	for i, s := range g.Steps {
		if s.IsNegative() {
			return fmt.Errorf("%w: grade %s step %d has a negative salary", ErrInvalidReference, g.Grade, i+1)
		}
	}
	for _, s := range g.NamedSteps {
		if s.Salary.IsNegative() {
			return fmt.Errorf("%w: grade %s rank %s has a negative salary", ErrInvalidReference, g.Grade, s.Code)
		}
	}
	return nil
}

func validatePlan(p domain.HealthPlan) error {
	if p.ID == "" {
		return fmt.Errorf("%w: health plan without an id", ErrInvalidReference)
	}
	if len(p.Rates) == 0 {
		return fmt.Errorf("%w: health plan %s has no rates", ErrInvalidReference, p.ID)
	}
	for tier, r := range p.Rates {
		if !tier.Valid() {
			return fmt.Errorf("%w: health plan %s has unknown coverage tier %q", ErrInvalidReference, p.ID, tier)
		}
		if r.Monthly.IsNegative() || r.Biweekly.IsNegative() {
			return fmt.Errorf("%w: health plan %s %s has a negative rate", ErrInvalidReference, p.ID, tier)
		}
	}
	return nil
}
