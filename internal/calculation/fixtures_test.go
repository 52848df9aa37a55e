package calculation

import (
	"time"

	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// testReference is a trimmed copy of the default tables
func testReference() *domain.ReferenceData {
	rates := func(self, spo, fam [2]string) map[domain.CoverageTier]domain.PlanRate {
		return map[domain.CoverageTier]domain.PlanRate{
			domain.CoverageSelf:        {Biweekly: d(self[0]), Monthly: d(self[1])},
			domain.CoverageSelfPlusOne: {Biweekly: d(spo[0]), Monthly: d(spo[1])},
			domain.CoverageFamily:      {Biweekly: d(fam[0]), Monthly: d(fam[1])},
		}
	}
	return &domain.ReferenceData{
		Version:  "test",
		Locality: domain.Locality{Code: "DC", Label: "Washington-Baltimore-Arlington", Rate: d("0.3394")},
		SalarySchedule: []domain.PayGrade{
			{
				Grade: "SFS",
				Label: "Senior Foreign Service",
				NamedSteps: []domain.NamedStep{
					{Code: "FE-CM", Label: "Career Minister", Salary: d("172100")},
					{Code: "FE-MC", Label: "Minister-Counselor", Salary: d("172100")},
					{Code: "FE-OC", Label: "Counselor", Salary: d("172100")},
				},
				DefaultStep: "FE-OC",
			},
			{
				Grade: "FS-01",
				Label: "FS-01",
				Steps: []decimal.Decimal{
					d("115506"), d("118971"), d("122540"), d("126216"), d("130002"), d("133902"), d("137919"),
					d("142057"), d("146319"), d("150709"), d("155230"), d("159887"), d("164684"), d("169625"),
				},
			},
			{
				Grade: "FS-04",
				Label: "FS-04",
				Steps: []decimal.Decimal{
					d("62468"), d("64342"), d("66272"), d("68260"), d("70308"), d("72417"), d("74590"),
					d("76828"), d("79133"), d("81507"), d("83952"), d("86471"), d("89065"), d("91737"),
				},
			},
		},
		HealthPlans: []domain.HealthPlan{
			{
				ID:              "BCBS-basic",
				Name:            "BCBS Basic",
				MarketplaceName: "Blue Cross Blue Shield Basic",
				Rates:           rates([2]string{"75.50", "163.58"}, [2]string{"167.50", "362.92"}, [2]string{"175.50", "380.25"}),
			},
			{
				ID:              "GEHA-standard",
				Name:            "GEHA Standard",
				MarketplaceName: "GEHA Standard",
				Rates:           rates([2]string{"72.50", "157.08"}, [2]string{"155.50", "336.92"}, [2]string{"165.50", "358.58"}),
			},
			{
				ID:    "Unmapped",
				Name:  "Unmapped Plan",
				Rates: rates([2]string{"10", "20"}, [2]string{"20", "40"}, [2]string{"30", "60"}),
			},
		},
		StateFactors: map[string]decimal.Decimal{
			"CA": d("1.05"),
			"NY": d("1.08"),
			"TX": d("0.98"),
		},
		StateExplanations: map[string]string{
			"CA": "California explanation",
			"DC": "District explanation",
		},
		States: []domain.State{
			{Code: "CA", Name: "California"},
			{Code: "DC", Name: "District of Columbia"},
		},
		Policy: domain.CurrentPolicy(),
	}
}

// testEngine returns an engine pinned to a fixed date
func testEngine(asOf time.Time) *Engine {
	e := NewEngine(testReference())
	e.Now = func() time.Time { return asOf }
	return e
}

func h3Input(age, years, h3 int) domain.CalculatorInput {
	return domain.CalculatorInput{
		CurrentAge:     age,
		YearsOfService: years,
		Grade:          "FS-01",
		Step:           "1",
		SalaryYears:    [3]int{h3, h3, h3},
	}
}
