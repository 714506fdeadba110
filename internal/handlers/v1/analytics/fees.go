package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/finance"
	"github.com/carson-networks/wellness-server/internal/logging"
	"github.com/carson-networks/wellness-server/internal/service"
)

// FeesBody is the request body for the fee detection endpoint.
type FeesBody struct {
	UserID        string   `json:"userID" required:"true" doc:"User UUID"`
	FeeType       string   `json:"feeType,omitempty" doc:"Restrict to one fee type: bank, subscription, service, foreign_exchange or penalty"`
	MinAmount     string   `json:"minAmount,omitempty" doc:"Drop detections below this decimal amount"`
	MinConfidence *float64 `json:"minConfidence,omitempty" minimum:"0" maximum:"1" doc:"Drop detections below this confidence"`
	Deduplicate   bool     `json:"deduplicate,omitempty" doc:"Collapse multi-pattern matches to the strongest entry"`
}

// FeesInput is the Huma input for the fee detection endpoint.
type FeesInput struct {
	Body FeesBody
}

// DetectedFee is the API response model for one fee detection.
type DetectedFee struct {
	TransactionID         string  `json:"transactionID" doc:"Source transaction UUID"`
	Amount                string  `json:"amount" doc:"Decimal amount"`
	Description           string  `json:"description" doc:"Source transaction description"`
	MerchantName          string  `json:"merchantName,omitempty" doc:"Source merchant name"`
	Date                  string  `json:"date" doc:"RFC3339 transaction date"`
	Category              string  `json:"category" doc:"Detection category, unknown for probe hits"`
	FeeType               string  `json:"feeType" doc:"Matched fee type"`
	Confidence            float64 `json:"confidence" doc:"Detection confidence in [0,1]"`
	Severity              string  `json:"severity" doc:"Severity grade"`
	Recurring             bool    `json:"recurring" doc:"Whether the fee recurs"`
	EstimatedAnnualImpact string  `json:"estimatedAnnualImpact" doc:"Projected yearly cost"`
}

// FeesResponseBody is the response body for the fee detection endpoint.
type FeesResponseBody struct {
	Fees                 []DetectedFee `json:"fees" doc:"Detections sorted by confidence descending"`
	EstimatedAnnualTotal string        `json:"estimatedAnnualTotal" doc:"Sum of estimated annual impacts"`
}

// FeesOutput is the Huma output for the fee detection endpoint.
type FeesOutput struct {
	Body FeesResponseBody
}

// FeesHandler handles POST /v1/analytics/fees.
type FeesHandler struct {
	AnalyticsService analysisRunner
}

// NewFeesHandler creates a new FeesHandler.
func NewFeesHandler(svc analysisRunner) *FeesHandler {
	return &FeesHandler{AnalyticsService: svc}
}

// Register registers the fee detection endpoint with the Huma API.
func (h *FeesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-fees",
		Method:      http.MethodPost,
		Path:        "/v1/analytics/fees",
		Summary:     "Detect hidden fees",
		Description: "Scans the user's expenses for hidden fees and returns detections sorted by confidence.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func parseFeeFilter(body FeesBody) (service.FeeFilter, error) {
	filter := service.FeeFilter{Deduplicate: body.Deduplicate}

	if body.FeeType != "" {
		feeType := finance.FeeType(body.FeeType)
		switch feeType {
		case finance.FeeTypeBank, finance.FeeTypeSubscription, finance.FeeTypeService,
			finance.FeeTypeForeignExchange, finance.FeeTypePenalty:
			filter.FeeType = &feeType
		default:
			return service.FeeFilter{}, huma.NewError(http.StatusBadRequest, "unknown feeType")
		}
	}
	if body.MinAmount != "" {
		minAmount, err := decimal.NewFromString(body.MinAmount)
		if err != nil {
			return service.FeeFilter{}, huma.NewError(http.StatusBadRequest, "invalid minAmount", err)
		}
		filter.MinAmount = &minAmount
	}
	filter.MinConfidence = body.MinConfidence

	return filter, nil
}

func (h *FeesHandler) handle(ctx context.Context, input *FeesInput) (*FeesOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}
	filter, err := parseFeeFilter(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyticsFeesMs")
	}
	fees, err := h.AnalyticsService.NewRun(userID).Fees(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to detect fees", err)
	}

	if logData != nil {
		logData.AddData("detectedFeeCount", len(fees))
	}

	resp := FeesResponseBody{Fees: make([]DetectedFee, len(fees))}
	annualTotal := decimal.Zero
	for i, fee := range fees {
		resp.Fees[i] = DetectedFee{
			TransactionID:         fee.TransactionID.String(),
			Amount:                fee.Amount.String(),
			Description:           fee.Description,
			MerchantName:          fee.MerchantName,
			Date:                  fee.Date.Format(time.RFC3339),
			Category:              fee.Category,
			FeeType:               string(fee.FeeType),
			Confidence:            fee.Confidence,
			Severity:              string(fee.Severity),
			Recurring:             fee.Recurring,
			EstimatedAnnualImpact: fee.EstimatedAnnualImpact.String(),
		}
		annualTotal = annualTotal.Add(fee.EstimatedAnnualImpact)
	}
	resp.EstimatedAnnualTotal = annualTotal.String()

	return &FeesOutput{Body: resp}, nil
}
