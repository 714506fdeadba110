package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseParams() SimulationParameters {
	return SimulationParameters{
		TargetAmount:          500000,
		TimeHorizonYears:      30,
		InitialAmount:         5000,
		MonthlyContribution:   500,
		ExpectedReturnPercent: 7,
		InflationRatePercent:  2.5,
		RiskTolerance:         RiskToleranceModerate,
	}
}

func TestProject_OneYearExample(t *testing.T) {
	params := baseParams()
	params.TimeHorizonYears = 1

	points, err := Project(params)
	assert.NoError(t, err)
	assert.Len(t, points, 2, "month 0 plus one year boundary")

	start := points[0]
	assert.Equal(t, 0, start.Year)
	assert.Equal(t, 5000.0, start.NominalValue)
	assert.Equal(t, 5000.0, start.CumulativeContributions)
	assert.Equal(t, 0.0, start.CumulativeGains)

	final := points[1]
	assert.Equal(t, 1, final.Year)
	assert.Equal(t, 11000.0, final.CumulativeContributions, "5000 + 500*12")

	// Closed form: P*(1+r)^12 + C*((1+r)^12-1)/r with r = 0.07/12.
	r := 7.0 / 100 / 12
	growth := math.Pow(1+r, 12)
	expected := 5000*growth + 500*(growth-1)/r
	assert.InDelta(t, expected, final.NominalValue, 1e-6)
	assert.InDelta(t, expected-11000, final.CumulativeGains, 1e-6)
	assert.InDelta(t, expected/1.025, final.RealValue, 1e-6)
}

func TestProject_Monotonic(t *testing.T) {
	points, err := Project(baseParams())
	assert.NoError(t, err)
	assert.Len(t, points, 31)

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].NominalValue, points[i-1].NominalValue,
			"nominal value non-decreasing with non-negative contribution and return")
	}
}

func TestProject_NegativeReturnAllowsNegativeGains(t *testing.T) {
	params := baseParams()
	params.TimeHorizonYears = 5
	params.MonthlyContribution = 0
	params.ExpectedReturnPercent = -10

	points, err := Project(params)
	assert.NoError(t, err)

	final := points[len(points)-1]
	assert.Less(t, final.NominalValue, params.InitialAmount)
	assert.Negative(t, final.CumulativeGains, "losses are not clamped")
}

func TestProject_ValidationErrors(t *testing.T) {
	zeroHorizon := baseParams()
	zeroHorizon.TimeHorizonYears = 0
	_, err := Project(zeroHorizon)
	assert.ErrorIs(t, err, ErrNonPositiveHorizon)

	negativeHorizon := baseParams()
	negativeHorizon.TimeHorizonYears = -3
	_, err = Project(negativeHorizon)
	assert.ErrorIs(t, err, ErrNonPositiveHorizon)

	ruinousReturn := baseParams()
	ruinousReturn.ExpectedReturnPercent = -1200
	_, err = Project(ruinousReturn)
	assert.ErrorIs(t, err, ErrReturnTooNegative)

	impossibleInflation := baseParams()
	impossibleInflation.InflationRatePercent = -100
	_, err = Project(impossibleInflation)
	assert.ErrorIs(t, err, ErrInflationTooLow)
}

func TestProject_Idempotent(t *testing.T) {
	first, err := Project(baseParams())
	assert.NoError(t, err)
	second, err := Project(baseParams())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScenarios_FinalAmountOrdering(t *testing.T) {
	results, err := Scenarios(baseParams())
	assert.NoError(t, err)
	assert.Len(t, results, 4)

	assert.Equal(t, "Optimistic", results[0].Name)
	assert.Equal(t, "Realistic", results[1].Name)
	assert.Equal(t, "Conservative", results[2].Name)
	assert.Equal(t, "Pessimistic", results[3].Name)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].FinalAmount, results[i].FinalAmount,
			"modifiers are monotonically ordered")
	}
}

func TestScenarios_FeasibilityThresholds(t *testing.T) {
	assert.Equal(t, FeasibilityExcellent, classifyFeasibility(100))
	assert.Equal(t, FeasibilityExcellent, classifyFeasibility(250))
	assert.Equal(t, FeasibilityGood, classifyFeasibility(99.99))
	assert.Equal(t, FeasibilityGood, classifyFeasibility(80))
	assert.Equal(t, FeasibilityChallenging, classifyFeasibility(60))
	assert.Equal(t, FeasibilityUnrealistic, classifyFeasibility(59.99))
	assert.Equal(t, FeasibilityUnrealistic, classifyFeasibility(0))
}

func TestScenarios_TargetRequired(t *testing.T) {
	params := baseParams()
	params.TargetAmount = 0

	_, err := Scenarios(params)
	assert.ErrorIs(t, err, ErrNonPositiveTarget)
}

func TestScenarios_EasyTargetIsExcellent(t *testing.T) {
	params := baseParams()
	params.TargetAmount = 1000

	results, err := Scenarios(params)
	assert.NoError(t, err)
	for _, res := range results {
		assert.Equal(t, FeasibilityExcellent, res.Feasibility)
	}
}
