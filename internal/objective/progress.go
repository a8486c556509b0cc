package objective

import "github.com/shopspring/decimal"

// Alert thresholds, in percent attained.
var (
	yellowThreshold   = decimal.NewFromInt(80)
	completeThreshold = decimal.NewFromInt(100)
)

const divisionScale = 4

var hundred = decimal.NewFromInt(100)

// Progress is the derived view of an objective.
type Progress struct {
	PercentAttained  decimal.Decimal
	RemainingBalance decimal.Decimal
	Alert            Alert
}

// PercentAttained is current over target as a percentage, with four
// internal decimal digits before the final 2-decimal rounding. A zero
// target attains 0%, never a division by zero.
func PercentAttained(current, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}

	return current.DivRound(target, divisionScale).Mul(hundred).Round(2)
}

// RemainingBalance is target minus current. Negative means overshoot.
func RemainingBalance(current, target decimal.Decimal) decimal.Decimal {
	return target.Sub(current)
}

// AlertFor classifies the attained percentage. Category limits never
// complete: crossing 100% of a cap is over-limit (red), not success.
func AlertFor(percent decimal.Decimal, typ Type) Alert {
	switch {
	case percent.GreaterThanOrEqual(completeThreshold) && typ != TypeCategoryLimit:
		return AlertCompleted
	case percent.GreaterThanOrEqual(completeThreshold):
		return AlertRed
	case percent.GreaterThanOrEqual(yellowThreshold):
		return AlertYellow
	}

	return AlertNone
}

// ProgressOf bundles the three computations over the objective's stored
// amounts.
func ProgressOf(o *Objective) Progress {
	percent := PercentAttained(o.CurrentAmount, o.TargetAmount)

	return Progress{
		PercentAttained:  percent,
		RemainingBalance: RemainingBalance(o.CurrentAmount, o.TargetAmount),
		Alert:            AlertFor(percent, o.Type),
	}
}
