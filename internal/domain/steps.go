package domain

import (
	money "github.com/rpgo/fso-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Unit tells the presentation layer how to render a Quantity
type Unit string

const (
	UnitCurrency Unit = "currency"
	UnitCount    Unit = "count"
	UnitFactor   Unit = "factor"
	UnitPercent  Unit = "percent"
)

// Quantity is a number tagged with its display unit. Places is the number
// of fractional digits to show; -1 shows the value as-is.
type Quantity struct {
	Value  decimal.Decimal `json:"value"`
	Unit   Unit            `json:"unit"`
	Places int32           `json:"places"`
}

// Currency builds a currency quantity shown with cents
func Currency(m money.Money) Quantity {
	return Quantity{Value: m.Decimal, Unit: UnitCurrency, Places: 2}
}

// Count builds a whole-number quantity
func Count(n int) Quantity {
	return Quantity{Value: decimal.NewFromInt(int64(n)), Unit: UnitCount, Places: 0}
}

// Factor builds a plain decimal quantity shown with the given places
func Factor(d decimal.Decimal, places int32) Quantity {
	return Quantity{Value: d, Unit: UnitFactor, Places: places}
}

// Percent builds a rate quantity; 0.05 renders as 5.0% with places=1
func Percent(d decimal.Decimal, places int32) Quantity {
	return Quantity{Value: d, Unit: UnitPercent, Places: places}
}

// Operator joins the operands of a step
type Operator string

const (
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
	OpAdd      Operator = "+"
)

// CalculationStep is one line of a worked calculation, kept numeric so the
// presentation layer decides on currency symbols and grouping.
// A step with no operands renders as "Label: Result".
type CalculationStep struct {
	Label    string     `json:"label"`
	Operands []Quantity `json:"operands,omitempty"`
	Operator Operator   `json:"operator,omitempty"`
	Result   Quantity   `json:"result"`
}

// ValueStep is a step that only reports a value
func ValueStep(label string, result Quantity) CalculationStep {
	return CalculationStep{Label: label, Result: result}
}

// ExprStep is a step that shows its operands and the result
func ExprStep(label string, op Operator, result Quantity, operands ...Quantity) CalculationStep {
	return CalculationStep{Label: label, Operands: operands, Operator: op, Result: result}
}
