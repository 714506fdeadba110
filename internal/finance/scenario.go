package finance

import "errors"

// Feasibility buckets how close a scenario lands to the target amount.
type Feasibility string

const (
	FeasibilityExcellent   Feasibility = "excellent"
	FeasibilityGood        Feasibility = "good"
	FeasibilityChallenging Feasibility = "challenging"
	FeasibilityUnrealistic Feasibility = "unrealistic"
)

// ScenarioResult is the outcome of one named projection variant.
type ScenarioResult struct {
	Name               string
	FinalAmount        float64
	TotalContributions float64
	TotalGains         float64
	Feasibility        Feasibility
}

// scenarioModifier scales the base return and contribution assumptions.
type scenarioModifier struct {
	name                 string
	returnModifier       float64
	contributionModifier float64
}

// Fixed modifier set, evaluated in this order so output ordering is stable.
var scenarioModifiers = []scenarioModifier{
	{name: "Optimistic", returnModifier: 1.2, contributionModifier: 1.1},
	{name: "Realistic", returnModifier: 1.0, contributionModifier: 1.0},
	{name: "Conservative", returnModifier: 0.8, contributionModifier: 0.9},
	{name: "Pessimistic", returnModifier: 0.6, contributionModifier: 0.8},
}

var ErrNonPositiveTarget = errors.New("target amount must be positive")

// Scenarios reruns the projection once per fixed modifier pair and classifies
// each run's final amount against the base target. Thresholds are inclusive
// on the lower bound and evaluated descending; first match wins.
func Scenarios(base SimulationParameters) ([]ScenarioResult, error) {
	if base.TargetAmount <= 0 {
		return nil, ErrNonPositiveTarget
	}
	if err := base.validate(); err != nil {
		return nil, err
	}

	results := make([]ScenarioResult, 0, len(scenarioModifiers))
	for _, mod := range scenarioModifiers {
		params := base
		params.ExpectedReturnPercent = base.ExpectedReturnPercent * mod.returnModifier
		params.MonthlyContribution = base.MonthlyContribution * mod.contributionModifier

		points, err := Project(params)
		if err != nil {
			return nil, err
		}
		final := points[len(points)-1]

		results = append(results, ScenarioResult{
			Name:               mod.name,
			FinalAmount:        final.NominalValue,
			TotalContributions: final.CumulativeContributions,
			TotalGains:         final.CumulativeGains,
			Feasibility:        classifyFeasibility(final.NominalValue / base.TargetAmount * 100),
		})
	}

	return results, nil
}

func classifyFeasibility(score float64) Feasibility {
	switch {
	case score >= 100:
		return FeasibilityExcellent
	case score >= 80:
		return FeasibilityGood
	case score >= 60:
		return FeasibilityChallenging
	default:
		return FeasibilityUnrealistic
	}
}
