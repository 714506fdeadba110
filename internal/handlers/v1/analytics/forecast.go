package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wellness-server/internal/logging"
)

// ForecastBody is the request body for the forecast endpoint.
type ForecastBody struct {
	UserID string `json:"userID" required:"true" doc:"User UUID"`
}

// ForecastInput is the Huma input for the forecast endpoint.
type ForecastInput struct {
	Body ForecastBody
}

// Prediction is the API response model for one forecast entry.
type Prediction struct {
	Kind       string  `json:"kind" doc:"Prediction kind: income, expense or balance"`
	Label      string  `json:"label" doc:"Human-readable label, e.g. a category name"`
	Value      float64 `json:"value" doc:"Predicted amount"`
	Confidence float64 `json:"confidence" doc:"Prediction confidence in [0,1]"`
	Impact     string  `json:"impact" doc:"Whether the prediction improves or worsens the position"`
}

// ForecastResponseBody is the response body for the forecast endpoint.
type ForecastResponseBody struct {
	Predictions []Prediction `json:"predictions" doc:"Predictions sorted by confidence descending"`
}

// ForecastOutput is the Huma output for the forecast endpoint.
type ForecastOutput struct {
	Body ForecastResponseBody
}

// ForecastHandler handles POST /v1/analytics/forecast.
type ForecastHandler struct {
	AnalyticsService analysisRunner

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(svc analysisRunner) *ForecastHandler {
	return &ForecastHandler{AnalyticsService: svc, now: time.Now}
}

// Register registers the forecast endpoint with the Huma API.
func (h *ForecastHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-forecast",
		Method:      http.MethodPost,
		Path:        "/v1/analytics/forecast",
		Summary:     "Forecast trends",
		Description: "Predicts income, per-category spend and balance six months out from the user's history.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *ForecastHandler) handle(ctx context.Context, input *ForecastInput) (*ForecastOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyticsForecastMs")
	}
	predictions, err := h.AnalyticsService.NewRun(userID).Forecast(ctx, h.now())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute forecast", err)
	}

	resp := ForecastResponseBody{Predictions: make([]Prediction, len(predictions))}
	for i, p := range predictions {
		resp.Predictions[i] = Prediction{
			Kind:       string(p.Kind),
			Label:      p.Label,
			Value:      p.Value,
			Confidence: p.Confidence,
			Impact:     string(p.Impact),
		}
	}

	return &ForecastOutput{Body: resp}, nil
}
