package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"25", 25},
		{" 25 ", 25},
		{"25 years", 25},
		{"3.9", 3},
		{"-4", -4},
		{"+7", 7},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseInt(tt.in))
		})
	}
}

func TestParseForm(t *testing.T) {
	in := ParseForm(map[string]string{
		"current-age":        "45",
		"years-of-service":   "15",
		"tera-eligible":      "yes",
		"tera-years":         "16",
		"tera-age":           "",
		"fs-grade":           "FS-02",
		"fs-step":            "5",
		"salary-year-1":      "140000",
		"salary-year-2":      "not a number",
		"current-plan":       "GEHA-standard",
		"coverage-type":      "family",
		"state":              "ca",
		"sick-leave-balance": "1200 hours",
	}, asOf)

	assert.Equal(t, 45, in.CurrentAge)
	assert.Equal(t, 15, in.YearsOfService)
	assert.Nil(t, in.ServiceComputationDate)
	assert.True(t, in.IsEarlyRetirementOffered)
	assert.Equal(t, 16, in.EarlyRetirementYears)
	assert.Equal(t, 0, in.EarlyRetirementAge)
	assert.Equal(t, "FS-02", in.Grade)
	assert.Equal(t, "5", in.Step)
	assert.Equal(t, [3]int{140000, 0, 0}, in.SalaryYears)
	assert.Equal(t, "GEHA-standard", in.HealthPlanID)
	assert.Equal(t, domain.CoverageFamily, in.CoverageTier)
	assert.Equal(t, "CA", in.HomeState)
	assert.Equal(t, 1200, in.SickLeaveHours)
}

func TestParseForm_ServiceComputationDate(t *testing.T) {
	tests := []struct {
		name          string
		scd           string
		expectedYears int
		expectedSCD   bool
	}{
		{"iso date", "2000-01-01", 25, true},
		{"us date", "01/01/2000", 25, true},
		{"rfc3339", "2000-01-01T00:00:00Z", 25, true},
		{"future date", "2030-01-01", 0, true},
		{"invalid date keeps entered years", "someday", 7, false},
		{"empty keeps entered years", "", 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ParseForm(map[string]string{
				"years-of-service":         "7",
				"service-computation-date": tt.scd,
			}, asOf)
			assert.Equal(t, tt.expectedYears, in.YearsOfService)
			assert.Equal(t, tt.expectedSCD, in.ServiceComputationDate != nil)
		})
	}
}

func TestParseForm_EarlyRetirementFlag(t *testing.T) {
	for _, v := range []string{"yes", " yes "} {
		assert.True(t, ParseForm(map[string]string{"tera-eligible": v}, asOf).IsEarlyRetirementOffered, v)
	}
	// the form's select submits lowercase "yes"; nothing else counts
	for _, v := range []string{"no", "", "true", "y", "YES", "Yes"} {
		assert.False(t, ParseForm(map[string]string{"tera-eligible": v}, asOf).IsEarlyRetirementOffered, v)
	}
}

func TestParseForm_Empty(t *testing.T) {
	assert.Equal(t, domain.CalculatorInput{}, ParseForm(nil, asOf))
}

func TestParseURLValues(t *testing.T) {
	values := url.Values{}
	values.Add("current-age", "60")
	values.Add("current-age", "61")
	values.Set("fs-grade", "SFS")
	values.Set("fs-step", "FE-MC")
	values["state"] = []string{}

	in := ParseURLValues(values, asOf)
	assert.Equal(t, 60, in.CurrentAge)
	assert.Equal(t, "SFS", in.Grade)
	assert.Equal(t, "FE-MC", in.Step)
	assert.Equal(t, "", in.HomeState)
}

func TestLoadInputFile(t *testing.T) {
	in, err := LoadInputFile(filepath.Join("testdata", "input.yaml"), asOf)
	require.NoError(t, err)

	assert.Equal(t, 58, in.CurrentAge)
	assert.Equal(t, 25, in.YearsOfService)
	require.NotNil(t, in.ServiceComputationDate)
	assert.True(t, in.IsEarlyRetirementOffered)
	assert.Equal(t, "FS-01", in.Grade)
	assert.Equal(t, "7", in.Step)
	assert.Equal(t, [3]int{150000, 152000, 155000}, in.SalaryYears)
	assert.Equal(t, domain.CoverageSelfPlusOne, in.CoverageTier)
	assert.Equal(t, 800, in.SickLeaveHours)
}

func TestLoadInputFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"current-age": 60, "years-of-service": "25", "tera-eligible": false, "state": "NY"}`), 0o644))

	in, err := LoadInputFile(path, asOf)
	require.NoError(t, err)
	assert.Equal(t, 60, in.CurrentAge)
	assert.Equal(t, 25, in.YearsOfService)
	assert.False(t, in.IsEarlyRetirementOffered)
	assert.Equal(t, "NY", in.HomeState)
}

func TestLoadInputFile_Errors(t *testing.T) {
	_, err := LoadInputFile(filepath.Join("testdata", "missing.yaml"), asOf)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "nested.yaml")
	require.NoError(t, os.WriteFile(path, []byte("current-age:\n  value: 60\n"), 0o644))
	_, err = LoadInputFile(path, asOf)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("current-age: [60\n"), 0o644))
	_, err = LoadInputFile(path, asOf)
	assert.Error(t, err)
}
