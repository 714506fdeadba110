package service

import (
	"github.com/carson-networks/wellness-server/internal/finance"
)

// SimulationService exposes the projection engine. It holds no state;
// simulations are computed from request parameters alone.
type SimulationService struct{}

// NewSimulationService creates a new SimulationService.
func NewSimulationService() *SimulationService {
	return &SimulationService{}
}

// Project runs a single compounding projection.
func (s *SimulationService) Project(params finance.SimulationParameters) ([]finance.ProjectionPoint, error) {
	return finance.Project(params)
}

// Scenarios runs the fixed scenario set against the base parameters.
func (s *SimulationService) Scenarios(params finance.SimulationParameters) ([]finance.ScenarioResult, error) {
	return finance.Scenarios(params)
}
