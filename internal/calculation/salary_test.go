package calculation

import (
	"strings"
	"testing"

	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMoney(t *testing.T, expected string, actual money.Money, label ...string) {
	t.Helper()
	assert.Truef(t, actual.Equal(money.NewMoneyFromDecimal(d(expected))),
		"%s expected %s, got %s", strings.Join(label, " "), expected, actual)
}

func TestBaseSalary(t *testing.T) {
	ref := testReference()

	tests := []struct {
		name     string
		grade    string
		step     string
		expected string
	}{
		{"FS-01 step 1", "FS-01", "1", "154709"},
		{"FS-04 step 14", "FS-04", "14", "122873"},
		{"SFS named rank", "SFS", "FE-CM", "230511"},
		{"SFS unknown rank falls back to FE-OC", "SFS", "FE-XX", "230511"},
		{"SFS empty rank", "SFS", "", "230511"},
		{"step out of range", "FS-01", "15", "0"},
		{"step zero", "FS-01", "0", "0"},
		{"non-numeric step", "FS-01", "abc", "0"},
		{"unknown grade", "FS-09", "1", "0"},
		{"empty grade", "", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.expected, BaseSalary(ref, tt.grade, tt.step))
		})
	}
}

func TestResolveSalaryYears(t *testing.T) {
	base := money.NewMoneyFromInt(154709)

	years := ResolveSalaryYears(base, [3]int{0, 150000, -5})
	assertMoney(t, "154709", years[0])
	assertMoney(t, "150000", years[1])
	assertMoney(t, "154709", years[2])
}

func TestHighThreeAverage(t *testing.T) {
	tests := []struct {
		name     string
		years    [3]int64
		expected string
	}{
		{"equal years", [3]int64{105000, 105000, 105000}, "105000"},
		{"rounds up to cents", [3]int64{100000, 100001, 100001}, "100000.67"},
		{"rounds down to cents", [3]int64{154709, 150000, 154709}, "153139.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var years [3]money.Money
			for i, y := range tt.years {
				years[i] = money.NewMoneyFromInt(y)
			}
			assertMoney(t, tt.expected, HighThreeAverage(years))
		})
	}
}

func TestHighThreeDetail(t *testing.T) {
	years := [3]money.Money{money.NewMoneyFromInt(90000), money.NewMoneyFromInt(95000), money.NewMoneyFromInt(100000)}

	detail := HighThree(years)
	assertMoney(t, "95000", detail.Amount)
	assert.Equal(t, "(Year 1 + Year 2 + Year 3) ÷ 3", detail.Formula)
	require.Len(t, detail.Steps, 4)
	assert.Equal(t, "Year 1", detail.Steps[0].Label)
	assert.Equal(t, "Average", detail.Steps[3].Label)
	assert.True(t, detail.Steps[3].Result.Value.Equal(d("95000")))
}
