package investment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// divisionScale is the intermediate precision for percentage math before
// the final 2-decimal rounding.
const divisionScale = 4

var hundred = decimal.NewFromInt(100)

// Valuation is the derived view of a position at a given market price.
type Valuation struct {
	CurrentValue  decimal.Decimal
	ProfitLoss    decimal.Decimal
	ReturnPercent decimal.Decimal
}

// CurrentValue is quantity times the current market price, rounded to two
// decimals half-up. An unknown price (zero) values the position at zero.
func CurrentValue(quantity, currentPrice decimal.Decimal) decimal.Decimal {
	if currentPrice.IsZero() {
		return decimal.Zero
	}

	return quantity.Mul(currentPrice).Round(2)
}

// ProfitLoss is currentValue minus totalInvested, rounded to two decimals.
func ProfitLoss(currentValue, totalInvested decimal.Decimal) decimal.Decimal {
	return currentValue.Sub(totalInvested).Round(2)
}

// ReturnPercentage is profitLoss over totalInvested as a percentage. The
// division keeps four decimal digits before the final rounding. A zero
// totalInvested yields zero rather than dividing by it.
func ReturnPercentage(profitLoss, totalInvested decimal.Decimal) decimal.Decimal {
	if totalInvested.IsZero() {
		return decimal.Zero
	}

	return profitLoss.DivRound(totalInvested, divisionScale).Mul(hundred).Round(2)
}

// Valuate computes the full valuation of a position at the given price.
// A negative held quantity is a precondition failure, not a market state.
func Valuate(inv *Investment, currentPrice decimal.Decimal) (Valuation, error) {
	if inv.Quantity.IsNegative() {
		return Valuation{}, fmt.Errorf("%w: negative quantity %s", ErrInvalidState, inv.Quantity)
	}

	current := CurrentValue(inv.Quantity, currentPrice)

	if currentPrice.IsZero() {
		return Valuation{
			CurrentValue:  decimal.Zero,
			ProfitLoss:    decimal.Zero,
			ReturnPercent: decimal.Zero,
		}, nil
	}

	profit := ProfitLoss(current, inv.TotalInvested)

	return Valuation{
		CurrentValue:  current,
		ProfitLoss:    profit,
		ReturnPercent: ReturnPercentage(profit, inv.TotalInvested),
	}, nil
}
