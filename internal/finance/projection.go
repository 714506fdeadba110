package finance

import (
	"errors"
	"math"
)

// RiskTolerance is carried on simulation parameters for display purposes;
// it does not influence the projection math.
type RiskTolerance string

const (
	RiskToleranceConservative RiskTolerance = "conservative"
	RiskToleranceModerate     RiskTolerance = "moderate"
	RiskToleranceAggressive   RiskTolerance = "aggressive"
)

// SimulationParameters is the ephemeral input to a projection run.
// Constructed fresh per simulation; never persisted mid-computation.
type SimulationParameters struct {
	TargetAmount          float64
	TimeHorizonYears      int
	InitialAmount         float64
	MonthlyContribution   float64
	ExpectedReturnPercent float64
	InflationRatePercent  float64
	RiskTolerance         RiskTolerance
}

// ProjectionPoint is one year-boundary sample of a compounding projection.
type ProjectionPoint struct {
	Year                    int
	NominalValue            float64
	RealValue               float64
	CumulativeContributions float64
	CumulativeGains         float64
}

var (
	ErrNonPositiveHorizon = errors.New("time horizon must be at least one year")
	ErrReturnTooNegative  = errors.New("expected return implies a monthly rate at or below -100%")
	ErrInflationTooLow    = errors.New("inflation rate must be above -100%")
)

// validate rejects parameter ranges that would amplify a negative balance or
// push NaN through the compounding loop.
func (p SimulationParameters) validate() error {
	if p.TimeHorizonYears <= 0 {
		return ErrNonPositiveHorizon
	}
	if p.ExpectedReturnPercent/100/12 <= -1 {
		return ErrReturnTooNegative
	}
	if p.InflationRatePercent <= -100 {
		return ErrInflationTooLow
	}
	return nil
}

// Project runs a monthly compounding loop over the full horizon and emits one
// point per year boundary, month 0 included. RealValue deflates the nominal
// value by cumulative inflation; CumulativeGains may go negative when returns
// are negative, reflecting real loss.
func Project(params SimulationParameters) ([]ProjectionPoint, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	monthlyRate := params.ExpectedReturnPercent / 100 / 12
	months := params.TimeHorizonYears * 12

	amount := params.InitialAmount
	points := make([]ProjectionPoint, 0, params.TimeHorizonYears+1)

	for month := 0; month <= months; month++ {
		if month > 0 {
			amount = amount*(1+monthlyRate) + params.MonthlyContribution
		}

		if month%12 != 0 {
			continue
		}

		year := month / 12
		contributions := params.InitialAmount + params.MonthlyContribution*float64(month)
		points = append(points, ProjectionPoint{
			Year:                    year,
			NominalValue:            amount,
			RealValue:               amount / math.Pow(1+params.InflationRatePercent/100, float64(year)),
			CumulativeContributions: contributions,
			CumulativeGains:         amount - contributions,
		})
	}

	return points, nil
}
