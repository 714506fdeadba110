package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

var adherenceTolerance = decimal.NewFromFloat(1.1)

// HealthInput carries the four derived metrics the scorer weighs.
type HealthInput struct {
	// SavingsRate is a percentage, e.g. 15 for 15%.
	SavingsRate float64
	// EmergencyFundMonths is how many months of expenses the emergency fund
	// covers.
	EmergencyFundMonths float64
	// BudgetAdherence is the fraction in [0,1] of categories whose actual
	// spend stays within 110% of budget. See AdherenceFraction.
	BudgetAdherence float64
	// HiddenFeesImpactPercent is hidden fees as a percentage of income.
	HiddenFeesImpactPercent float64
}

// HealthScore is the 0-100 composite plus its component contributions.
type HealthScore struct {
	Total           int
	SavingsRate     float64
	EmergencyFund   float64
	BudgetAdherence float64
	HiddenFees      float64
}

// ScoreHealth combines four independently-capped component scores into a
// single 0-100 value. Pure and total: any input produces a defined score.
func ScoreHealth(in HealthInput) HealthScore {
	score := HealthScore{}

	switch {
	case in.SavingsRate >= 20:
		score.SavingsRate = 40
	case in.SavingsRate >= 10:
		score.SavingsRate = 20
	case in.SavingsRate >= 0:
		score.SavingsRate = 10
	}

	switch {
	case in.EmergencyFundMonths >= 6:
		score.EmergencyFund = 20
	case in.EmergencyFundMonths >= 3:
		score.EmergencyFund = 15
	case in.EmergencyFundMonths >= 1:
		score.EmergencyFund = 10
	}

	score.BudgetAdherence = in.BudgetAdherence * 20

	switch {
	case in.HiddenFeesImpactPercent < 1:
		score.HiddenFees = 20
	case in.HiddenFeesImpactPercent < 3:
		score.HiddenFees = 15
	case in.HiddenFeesImpactPercent < 5:
		score.HiddenFees = 10
	}

	total := int(math.Round(score.SavingsRate + score.EmergencyFund + score.BudgetAdherence + score.HiddenFees))
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	score.Total = total

	return score
}

// AdherenceFraction is the share of categories whose actual spend stays
// within a 10% tolerance of budget. Categories without a positive budget
// count toward the denominator but can never satisfy the tolerance check,
// matching the observed behavior. An empty slice yields 0, not an error.
func AdherenceFraction(categories []BudgetCategory) float64 {
	if len(categories) == 0 {
		return 0
	}

	within := 0
	for _, cat := range categories {
		if !cat.BudgetedAmount.IsPositive() {
			continue
		}
		limit := cat.BudgetedAmount.Mul(adherenceTolerance)
		if cat.ActualAmount.LessThanOrEqual(limit) {
			within++
		}
	}

	return float64(within) / float64(len(categories))
}
