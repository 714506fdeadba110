package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/service"
)

// HealthBody is the request body for the health score endpoint.
type HealthBody struct {
	UserID        string `json:"userID" required:"true" doc:"User UUID"`
	Start         string `json:"start" required:"true" format:"date-time" doc:"Inclusive window start, RFC3339"`
	End           string `json:"end" required:"true" format:"date-time" doc:"Inclusive window end, RFC3339"`
	EmergencyFund string `json:"emergencyFund,omitempty" doc:"Decimal emergency fund balance, defaults to 0"`
}

// HealthInput is the Huma input for the health score endpoint.
type HealthInput struct {
	Body HealthBody
}

// HealthComponents breaks the composite score into its weighted parts.
type HealthComponents struct {
	SavingsRate     float64 `json:"savingsRate" doc:"Savings rate contribution, up to 40"`
	EmergencyFund   float64 `json:"emergencyFund" doc:"Emergency fund contribution, up to 20"`
	BudgetAdherence float64 `json:"budgetAdherence" doc:"Budget adherence contribution, up to 20"`
	HiddenFees      float64 `json:"hiddenFees" doc:"Hidden fee contribution, up to 20"`
}

// HealthResponseBody is the response body for the health score endpoint.
type HealthResponseBody struct {
	Score                   int              `json:"score" minimum:"0" maximum:"100" doc:"Composite health score"`
	Components              HealthComponents `json:"components" doc:"Per-component contributions"`
	SavingsRate             float64          `json:"savingsRate" doc:"Derived savings rate percentage"`
	EmergencyFundMonths     float64          `json:"emergencyFundMonths" doc:"Months of expenses the fund covers"`
	BudgetAdherence         float64          `json:"budgetAdherence" doc:"Fraction of categories within budget tolerance"`
	HiddenFeesImpactPercent float64          `json:"hiddenFeesImpactPercent" doc:"Hidden fees as a percentage of income"`
}

// HealthOutput is the Huma output for the health score endpoint.
type HealthOutput struct {
	Body HealthResponseBody
}

// HealthHandler handles POST /v1/analytics/health.
type HealthHandler struct {
	AnalyticsService analysisRunner
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(svc analysisRunner) *HealthHandler {
	return &HealthHandler{AnalyticsService: svc}
}

// Register registers the health score endpoint with the Huma API.
func (h *HealthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-health",
		Method:      http.MethodPost,
		Path:        "/v1/analytics/health",
		Summary:     "Financial health score",
		Description: "Derives savings, emergency fund, adherence and fee metrics over a window and scores them 0-100.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *HealthHandler) handle(ctx context.Context, input *HealthInput) (*HealthOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}
	window, err := parseWindow(input.Body.Start, input.Body.End)
	if err != nil {
		return nil, err
	}

	emergencyFund := decimal.Zero
	if input.Body.EmergencyFund != "" {
		emergencyFund, err = decimal.NewFromString(input.Body.EmergencyFund)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid emergencyFund", err)
		}
		if emergencyFund.IsNegative() {
			return nil, huma.NewError(http.StatusBadRequest, "emergencyFund must be non-negative")
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyticsHealthMs")
	}
	result, err := h.AnalyticsService.NewRun(userID).Health(ctx, service.HealthRequest{
		UserID:        userID,
		Window:        window,
		EmergencyFund: emergencyFund,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute health score", err)
	}

	if logData != nil {
		logData.AddData("healthScore", result.Score.Total)
	}

	return &HealthOutput{
		Body: HealthResponseBody{
			Score: result.Score.Total,
			Components: HealthComponents{
				SavingsRate:     result.Score.SavingsRate,
				EmergencyFund:   result.Score.EmergencyFund,
				BudgetAdherence: result.Score.BudgetAdherence,
				HiddenFees:      result.Score.HiddenFees,
			},
			SavingsRate:             result.SavingsRate,
			EmergencyFundMonths:     result.EmergencyFundMonths,
			BudgetAdherence:         result.BudgetAdherence,
			HiddenFeesImpactPercent: result.HiddenFeesImpactPercent,
		},
	}, nil
}
