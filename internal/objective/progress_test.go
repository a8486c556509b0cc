package objective_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mrodrig/grana/internal/objective"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPercentAttained(t *testing.T) {
	type testCase struct {
		name    string
		current string
		target  string
		want    string
	}

	tests := []testCase{
		{name: "Zero", current: "0", target: "1000", want: "0.00"},
		{name: "Eighty", current: "800", target: "1000", want: "80.00"},
		{name: "Overshoot", current: "1200", target: "1000", want: "120.00"},
		{name: "ZeroTarget", current: "500", target: "0", want: "0"},
		{name: "Fractional", current: "1", target: "3", want: "33.33"},
		{name: "Exact", current: "1000", target: "1000", want: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objective.PercentAttained(dec(tt.current), dec(tt.target))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	assert.True(t, objective.RemainingBalance(dec("300"), dec("1000")).Equal(dec("700")))

	// Negative remaining signals overshoot.
	assert.True(t, objective.RemainingBalance(dec("1200"), dec("1000")).Equal(dec("-200")))
}

func TestAlertFor(t *testing.T) {
	type testCase struct {
		name    string
		percent string
		typ     objective.Type
		want    objective.Alert
	}

	tests := []testCase{
		{name: "BelowYellow", percent: "79.99", typ: objective.TypeMonthlySavings, want: objective.AlertNone},
		{name: "AtYellow", percent: "80", typ: objective.TypeMonthlySavings, want: objective.AlertYellow},
		{name: "NearComplete", percent: "99.99", typ: objective.TypeMonthlySavings, want: objective.AlertYellow},
		{name: "SavingsCompleted", percent: "100", typ: objective.TypeMonthlySavings, want: objective.AlertCompleted},
		{name: "InvestmentCompleted", percent: "130", typ: objective.TypeInvestmentGoal, want: objective.AlertCompleted},
		{name: "CategoryLimitAtHundredIsRed", percent: "100", typ: objective.TypeCategoryLimit, want: objective.AlertRed},
		{name: "CategoryLimitOvershootStaysRed", percent: "150", typ: objective.TypeCategoryLimit, want: objective.AlertRed},
		{name: "CategoryLimitYellow", percent: "85", typ: objective.TypeCategoryLimit, want: objective.AlertYellow},
		{name: "CategoryLimitNone", percent: "10", typ: objective.TypeCategoryLimit, want: objective.AlertNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objective.AlertFor(dec(tt.percent), tt.typ))
		})
	}
}

func TestProgressOf(t *testing.T) {
	o := &objective.Objective{
		Type:          objective.TypeMonthlySavings,
		TargetAmount:  dec("1000"),
		CurrentAmount: dec("800"),
	}

	got := objective.ProgressOf(o)
	assert.True(t, got.PercentAttained.Equal(dec("80")))
	assert.True(t, got.RemainingBalance.Equal(dec("200")))
	assert.Equal(t, objective.AlertYellow, got.Alert)
}

func TestProgressOf_UnsetCurrentTreatedAsZero(t *testing.T) {
	// A zero-value decimal is decimal zero, mirroring a null current
	// amount in the store.
	o := &objective.Objective{
		Type:         objective.TypeInvestmentGoal,
		TargetAmount: dec("1000"),
	}

	got := objective.ProgressOf(o)
	assert.True(t, got.PercentAttained.IsZero())
	assert.True(t, got.RemainingBalance.Equal(dec("1000")))
	assert.Equal(t, objective.AlertNone, got.Alert)
}
