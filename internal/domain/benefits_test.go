package domain

import (
	"testing"

	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBenefitsResult_Scenario(t *testing.T) {
	r := &BenefitsResult{Scenarios: []RetirementScenario{
		{Kind: KindRegular, AnnualAmount: money.NewMoneyFromInt(44625)},
		{Kind: KindDeferred},
	}}

	s, ok := r.Scenario(KindRegular)
	assert.True(t, ok)
	assert.True(t, s.AnnualAmount.Equal(money.NewMoneyFromInt(44625)))

	_, ok = r.Scenario(KindTERA)
	assert.False(t, ok)
}

func TestEligibility_Eligible(t *testing.T) {
	e := Eligibility{VERA: true, MRAPlus10: true}

	for _, k := range RetirementKinds {
		assert.Equal(t, k == KindVERA || k == KindMRAPlus10, e.Eligible(k), string(k))
	}
	assert.False(t, e.Eligible("Disability"))
	assert.Equal(t, []RetirementKind{KindVERA, KindMRAPlus10}, e.Kinds())
}

func TestDerivedProfile_MeetsMinimumRetirementAge(t *testing.T) {
	p := DerivedProfile{Age: 57, MinimumRetirementAge: dec("57.8333333333333333")}
	assert.False(t, p.MeetsMinimumRetirementAge())

	p.Age = 58
	assert.True(t, p.MeetsMinimumRetirementAge())

	p = DerivedProfile{Age: 57, MinimumRetirementAge: dec("57")}
	assert.True(t, p.MeetsMinimumRetirementAge())
}

func TestSteps(t *testing.T) {
	step := ExprStep("Monthly Amount", OpDivide, Currency(money.NewMoney(3718.75)), Currency(money.NewMoneyFromInt(44625)), Count(12))

	assert.Equal(t, OpDivide, step.Operator)
	assert.Len(t, step.Operands, 2)
	assert.Equal(t, UnitCurrency, step.Result.Unit)
	assert.Equal(t, int32(2), step.Result.Places)
	assert.Equal(t, UnitCount, step.Operands[1].Unit)

	v := ValueStep("Reduction", Percent(dec("0.1"), 1))
	assert.Empty(t, v.Operands)
	assert.Equal(t, UnitPercent, v.Result.Unit)
}
