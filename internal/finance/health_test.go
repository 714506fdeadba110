package finance

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScoreHealth_PerfectInputs(t *testing.T) {
	score := ScoreHealth(HealthInput{
		SavingsRate:             25,
		EmergencyFundMonths:     8,
		BudgetAdherence:         1,
		HiddenFeesImpactPercent: 0.5,
	})

	assert.Equal(t, 100, score.Total)
	assert.Equal(t, 40.0, score.SavingsRate)
	assert.Equal(t, 20.0, score.EmergencyFund)
	assert.Equal(t, 20.0, score.BudgetAdherence)
	assert.Equal(t, 20.0, score.HiddenFees)
}

func TestScoreHealth_WorstInputs(t *testing.T) {
	score := ScoreHealth(HealthInput{
		SavingsRate:             -15,
		EmergencyFundMonths:     0,
		BudgetAdherence:         0,
		HiddenFeesImpactPercent: 12,
	})

	assert.Equal(t, 0, score.Total)
}

func TestScoreHealth_SavingsRateTiers(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected float64
	}{
		{"twenty and above", 20, 40},
		{"ten to twenty", 10, 20},
		{"zero to ten", 0, 10},
		{"negative", -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreHealth(HealthInput{SavingsRate: tc.rate})
			assert.Equal(t, tc.expected, score.SavingsRate)
		})
	}
}

func TestScoreHealth_EmergencyFundTiers(t *testing.T) {
	tests := []struct {
		name     string
		months   float64
		expected float64
	}{
		{"six months", 6, 20},
		{"three months", 3, 15},
		{"one month", 1, 10},
		{"under one month", 0.9, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreHealth(HealthInput{SavingsRate: -1, EmergencyFundMonths: tc.months})
			assert.Equal(t, tc.expected, score.EmergencyFund)
		})
	}
}

func TestScoreHealth_FeeImpactTiers(t *testing.T) {
	tests := []struct {
		name     string
		impact   float64
		expected float64
	}{
		{"under one percent", 0.99, 20},
		{"under three percent", 2.99, 15},
		{"under five percent", 4.99, 10},
		{"five percent and above", 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreHealth(HealthInput{SavingsRate: -1, HiddenFeesImpactPercent: tc.impact})
			assert.Equal(t, tc.expected, score.HiddenFees)
		})
	}
}

func TestScoreHealth_BoundedForAnyInput(t *testing.T) {
	inputs := []HealthInput{
		{SavingsRate: 1e9, EmergencyFundMonths: 1e9, BudgetAdherence: 1, HiddenFeesImpactPercent: 0},
		{SavingsRate: -1e9, EmergencyFundMonths: -1, BudgetAdherence: 0, HiddenFeesImpactPercent: 1e9},
		{SavingsRate: 15, EmergencyFundMonths: 2, BudgetAdherence: 0.5, HiddenFeesImpactPercent: 3.2},
	}

	for _, in := range inputs {
		score := ScoreHealth(in)
		assert.GreaterOrEqual(t, score.Total, 0)
		assert.LessOrEqual(t, score.Total, 100)
	}
}

func makeCategory(budgeted, actual string) BudgetCategory {
	return BudgetCategory{
		ID:             uuid.Must(uuid.NewV4()),
		Name:           "Test",
		Type:           CategoryTypeVariableExpense,
		BudgetedAmount: decimal.RequireFromString(budgeted),
		ActualAmount:   decimal.RequireFromString(actual),
	}
}

func TestAdherenceFraction(t *testing.T) {
	categories := []BudgetCategory{
		makeCategory("100", "100"),    // within budget
		makeCategory("100", "110"),    // exactly at the 10% tolerance
		makeCategory("100", "110.01"), // over tolerance
		makeCategory("0", "50"),       // no budget set, never adheres
	}

	assert.Equal(t, 0.5, AdherenceFraction(categories))
}

func TestAdherenceFraction_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AdherenceFraction(nil))
	assert.Equal(t, 0.0, AdherenceFraction([]BudgetCategory{}))
}
