package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wellness-server/internal/finance"
	"github.com/carson-networks/wellness-server/internal/logging"
)

// SummaryBody is the request body for the summary endpoint.
type SummaryBody struct {
	UserID            string `json:"userID" required:"true" doc:"User UUID"`
	Start             string `json:"start" required:"true" format:"date-time" doc:"Inclusive window start, RFC3339"`
	End               string `json:"end" required:"true" format:"date-time" doc:"Inclusive window end, RFC3339"`
	CategoryID        string `json:"categoryID,omitempty" doc:"Restrict income/expense sums to one category"`
	IncludeHiddenFees bool   `json:"includeHiddenFees,omitempty" doc:"Count flagged hidden fees in the expense sum"`
}

// SummaryInput is the Huma input for the summary endpoint.
type SummaryInput struct {
	Body SummaryBody
}

// SummaryResponseBody is the response body for the summary endpoint.
type SummaryResponseBody struct {
	Income          string  `json:"income" doc:"Decimal income sum"`
	Expenses        string  `json:"expenses" doc:"Decimal expense sum"`
	Balance         string  `json:"balance" doc:"Income minus expenses"`
	SavingsRate     float64 `json:"savingsRate" doc:"Balance over income as a percentage, 0 when income is 0"`
	HiddenFeesTotal string  `json:"hiddenFeesTotal" doc:"Window-scoped hidden fee total, unaffected by the other filters"`
}

// SummaryOutput is the Huma output for the summary endpoint.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// SummaryHandler handles POST /v1/analytics/summary.
type SummaryHandler struct {
	AnalyticsService analysisRunner
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc analysisRunner) *SummaryHandler {
	return &SummaryHandler{AnalyticsService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-summary",
		Method:      http.MethodPost,
		Path:        "/v1/analytics/summary",
		Summary:     "Financial summary",
		Description: "Aggregates income, expenses, balance, savings rate and hidden fee total over a window.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}
	window, err := parseWindow(input.Body.Start, input.Body.End)
	if err != nil {
		return nil, err
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != "" {
		parsed, parseErr := uuid.FromString(input.Body.CategoryID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", parseErr)
		}
		categoryID = &parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyticsSummaryMs")
	}
	summary, err := h.AnalyticsService.NewRun(userID).Summary(ctx, finance.AggregateFilter{
		Window:            window,
		CategoryID:        categoryID,
		IncludeHiddenFees: input.Body.IncludeHiddenFees,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	return &SummaryOutput{
		Body: SummaryResponseBody{
			Income:          summary.Income.String(),
			Expenses:        summary.Expenses.String(),
			Balance:         summary.Balance.String(),
			SavingsRate:     summary.SavingsRate,
			HiddenFeesTotal: summary.HiddenFeesTotal.String(),
		},
	}, nil
}
