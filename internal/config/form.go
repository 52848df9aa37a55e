package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// Form field names submitted by the calculator page
const (
	FieldCurrentAge             = "current-age"
	FieldYearsOfService         = "years-of-service"
	FieldServiceComputationDate = "service-computation-date"
	FieldEarlyRetirementOffered = "tera-eligible"
	FieldEarlyRetirementYears   = "tera-years"
	FieldEarlyRetirementAge     = "tera-age"
	FieldGrade                  = "fs-grade"
	FieldStep                   = "fs-step"
	FieldSalaryYear1            = "salary-year-1"
	FieldSalaryYear2            = "salary-year-2"
	FieldSalaryYear3            = "salary-year-3"
	FieldHealthPlan             = "current-plan"
	FieldCoverageType           = "coverage-type"
	FieldState                  = "state"
	FieldSickLeaveBalance       = "sick-leave-balance"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

// ParseForm normalizes a raw form record. Malformed numbers become zero and
// never fail; a service computation date, when present and valid, replaces
// the entered years of service.
func ParseForm(values map[string]string, asOf time.Time) domain.CalculatorInput {
	get := func(key string) string { return strings.TrimSpace(values[key]) }

	in := domain.CalculatorInput{
		CurrentAge:               parseInt(get(FieldCurrentAge)),
		YearsOfService:           parseInt(get(FieldYearsOfService)),
		IsEarlyRetirementOffered: get(FieldEarlyRetirementOffered) == "yes",
		EarlyRetirementYears:     parseInt(get(FieldEarlyRetirementYears)),
		EarlyRetirementAge:       parseInt(get(FieldEarlyRetirementAge)),
		Grade:                    get(FieldGrade),
		Step:                     get(FieldStep),
		SalaryYears: [3]int{
			parseInt(get(FieldSalaryYear1)),
			parseInt(get(FieldSalaryYear2)),
			parseInt(get(FieldSalaryYear3)),
		},
		HealthPlanID:   get(FieldHealthPlan),
		CoverageTier:   domain.CoverageTier(get(FieldCoverageType)),
		HomeState:      strings.ToUpper(get(FieldState)),
		SickLeaveHours: parseInt(get(FieldSickLeaveBalance)),
	}

	if scd, ok := parseDate(get(FieldServiceComputationDate)); ok {
		in.ServiceComputationDate = &scd
		in.YearsOfService = dateutil.CompletedYearsOfService(scd, asOf)
	}
	return in
}

// ParseURLValues normalizes a form-encoded submission, using the first value of each field
func ParseURLValues(values url.Values, asOf time.Time) domain.CalculatorInput {
	flat := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			flat[k] = v[0]
		}
	}
	return ParseForm(flat, asOf)
}

// LoadInputFile reads a flat YAML or JSON record keyed by form field name
func LoadInputFile(filename string, asOf time.Time) (domain.CalculatorInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	values, err := DecodeRecord(data)
	if err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return ParseForm(values, asOf), nil
}

// DecodeRecord decodes a flat YAML or JSON object into form values
func DecodeRecord(data []byte) (map[string]string, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FlattenRecord(raw)
}

// FlattenRecord converts decoded scalar values into form values.
// Booleans map to the form's yes/no, dates to YYYY-MM-DD.
func FlattenRecord(raw map[string]interface{}) (map[string]string, error) {
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			values[k] = val
		case bool:
			if val {
				values[k] = "yes"
			} else {
				values[k] = "no"
			}
		case float64:
			values[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case time.Time:
			values[k] = val.Format("2006-01-02")
		case map[string]interface{}, []interface{}:
			return nil, fmt.Errorf("field %s must be a scalar", k)
		default:
			values[k] = fmt.Sprint(val)
		}
	}
	return values, nil
}

// parseInt reads the leading integer of s the way a browser form does:
// "25 years" is 25, "3.9" is 3 and anything without leading digits is 0.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateutil.StartOfDay(t), true
		}
	}
	return time.Time{}, false
}
