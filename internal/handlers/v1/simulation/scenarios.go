package simulation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wellness-server/internal/finance"
	"github.com/carson-networks/wellness-server/internal/logging"
)

// ScenariosInput is the Huma input for running the scenario set.
type ScenariosInput struct {
	Body SimulationParametersBody
}

// ScenarioResult is the API response model for one scenario outcome.
type ScenarioResult struct {
	Name               string  `json:"name" doc:"Scenario name"`
	FinalAmount        float64 `json:"finalAmount" doc:"Projected balance at the horizon"`
	TotalContributions float64 `json:"totalContributions" doc:"Total paid in over the horizon"`
	TotalGains         float64 `json:"totalGains" doc:"Final amount minus contributions"`
	Feasibility        string  `json:"feasibility" doc:"How close the scenario lands to the target"`
}

// ScenariosResponseBody is the response body for running the scenario set.
type ScenariosResponseBody struct {
	Scenarios []ScenarioResult `json:"scenarios" doc:"Fixed scenario set in order: Optimistic, Realistic, Conservative, Pessimistic"`
}

// ScenariosOutput is the Huma output for running the scenario set.
type ScenariosOutput struct {
	Body ScenariosResponseBody
}

// scenarioRunner is the interface for running the scenario set.
type scenarioRunner interface {
	Scenarios(params finance.SimulationParameters) ([]finance.ScenarioResult, error)
}

// ScenariosHandler handles POST /v1/simulation/scenarios.
type ScenariosHandler struct {
	SimulationService scenarioRunner
}

// NewScenariosHandler creates a new ScenariosHandler.
func NewScenariosHandler(svc scenarioRunner) *ScenariosHandler {
	return &ScenariosHandler{SimulationService: svc}
}

// Register registers the scenarios endpoint with the Huma API.
func (h *ScenariosHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "simulation-scenarios",
		Method:      http.MethodPost,
		Path:        "/v1/simulation/scenarios",
		Summary:     "Run scenario set",
		Description: "Runs the fixed optimistic-to-pessimistic scenario set and grades feasibility against the target.",
		Tags:        []string{"Simulations"},
	}, h.handle)
}

func (h *ScenariosHandler) handle(ctx context.Context, input *ScenariosInput) (*ScenariosOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("simulationScenariosMs")
	}
	scenarios, err := h.SimulationService.Scenarios(input.Body.toParameters())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, simulationError(err)
	}

	resp := ScenariosResponseBody{Scenarios: make([]ScenarioResult, len(scenarios))}
	for i, scenario := range scenarios {
		resp.Scenarios[i] = ScenarioResult{
			Name:               scenario.Name,
			FinalAmount:        scenario.FinalAmount,
			TotalContributions: scenario.TotalContributions,
			TotalGains:         scenario.TotalGains,
			Feasibility:        string(scenario.Feasibility),
		}
	}

	return &ScenariosOutput{Body: resp}, nil
}
