// Package simulation exposes the projection engine. Simulations are pure
// computations over request parameters; nothing is read from or written to
// storage.
package simulation

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wellness-server/internal/finance"
)

// SimulationParametersBody carries the shared projection inputs.
type SimulationParametersBody struct {
	TargetAmount          float64 `json:"targetAmount,omitempty" minimum:"0" doc:"Goal amount, required for scenarios"`
	TimeHorizonYears      int     `json:"timeHorizonYears" required:"true" doc:"Projection horizon in whole years"`
	InitialAmount         float64 `json:"initialAmount,omitempty" minimum:"0" doc:"Starting balance"`
	MonthlyContribution   float64 `json:"monthlyContribution,omitempty" minimum:"0" doc:"Contribution added each month"`
	ExpectedReturnPercent float64 `json:"expectedReturnPercent,omitempty" doc:"Annual return percentage, e.g. 7 for 7%"`
	InflationRatePercent  float64 `json:"inflationRatePercent,omitempty" doc:"Annual inflation percentage"`
	RiskTolerance         string  `json:"riskTolerance,omitempty" enum:"conservative,moderate,aggressive" doc:"Informational risk profile"`
}

func (b SimulationParametersBody) toParameters() finance.SimulationParameters {
	return finance.SimulationParameters{
		TargetAmount:          b.TargetAmount,
		TimeHorizonYears:      b.TimeHorizonYears,
		InitialAmount:         b.InitialAmount,
		MonthlyContribution:   b.MonthlyContribution,
		ExpectedReturnPercent: b.ExpectedReturnPercent,
		InflationRatePercent:  b.InflationRatePercent,
		RiskTolerance:         finance.RiskTolerance(b.RiskTolerance),
	}
}

// simulationError maps parameter validation failures to 422 and everything
// else to 500.
func simulationError(err error) error {
	switch {
	case errors.Is(err, finance.ErrNonPositiveHorizon),
		errors.Is(err, finance.ErrReturnTooNegative),
		errors.Is(err, finance.ErrInflationTooLow),
		errors.Is(err, finance.ErrNonPositiveTarget):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "simulation failed", err)
	}
}
