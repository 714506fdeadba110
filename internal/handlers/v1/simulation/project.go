package simulation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wellness-server/internal/finance"
	"github.com/carson-networks/wellness-server/internal/logging"
)

// ProjectInput is the Huma input for running a projection.
type ProjectInput struct {
	Body SimulationParametersBody
}

// ProjectionPoint is the API response model for one year-boundary sample.
type ProjectionPoint struct {
	Year                    int     `json:"year" doc:"Years since the start, 0 for the initial point"`
	NominalValue            float64 `json:"nominalValue" doc:"Projected balance"`
	RealValue               float64 `json:"realValue" doc:"Balance deflated by cumulative inflation"`
	CumulativeContributions float64 `json:"cumulativeContributions" doc:"Total paid in so far"`
	CumulativeGains         float64 `json:"cumulativeGains" doc:"Nominal value minus contributions, may be negative"`
}

// ProjectResponseBody is the response body for running a projection.
type ProjectResponseBody struct {
	Points []ProjectionPoint `json:"points" doc:"One point per year boundary, year 0 included"`
}

// ProjectOutput is the Huma output for running a projection.
type ProjectOutput struct {
	Body ProjectResponseBody
}

// projector is the interface for running projections.
type projector interface {
	Project(params finance.SimulationParameters) ([]finance.ProjectionPoint, error)
}

// ProjectHandler handles POST /v1/simulation/project.
type ProjectHandler struct {
	SimulationService projector
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc projector) *ProjectHandler {
	return &ProjectHandler{SimulationService: svc}
}

// Register registers the projection endpoint with the Huma API.
func (h *ProjectHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "simulation-project",
		Method:      http.MethodPost,
		Path:        "/v1/simulation/project",
		Summary:     "Run projection",
		Description: "Runs a monthly compounding projection and returns one point per year.",
		Tags:        []string{"Simulations"},
	}, h.handle)
}

func (h *ProjectHandler) handle(ctx context.Context, input *ProjectInput) (*ProjectOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("simulationProjectMs")
	}
	points, err := h.SimulationService.Project(input.Body.toParameters())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, simulationError(err)
	}

	resp := ProjectResponseBody{Points: make([]ProjectionPoint, len(points))}
	for i, point := range points {
		resp.Points[i] = ProjectionPoint{
			Year:                    point.Year,
			NominalValue:            point.NominalValue,
			RealValue:               point.RealValue,
			CumulativeContributions: point.CumulativeContributions,
			CumulativeGains:         point.CumulativeGains,
		}
	}

	return &ProjectOutput{Body: resp}, nil
}
