package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/finance"
)

// FeeFilter narrows detector output for one fee view. The detector itself is
// never filtered; these apply after detection so confidence sorting holds.
type FeeFilter struct {
	FeeType       *finance.FeeType
	MinAmount     *decimal.Decimal
	MinConfidence *float64
	Deduplicate   bool
}

// HealthRequest carries the inputs for a health computation that do not live
// in storage. EmergencyFund is supplied by the caller per request.
type HealthRequest struct {
	UserID        uuid.UUID
	Window        finance.Window
	EmergencyFund decimal.Decimal
}

// HealthResult pairs the composite score with the derived metrics it was
// computed from, so callers can display both.
type HealthResult struct {
	Score                   finance.HealthScore
	SavingsRate             float64
	EmergencyFundMonths     float64
	BudgetAdherence         float64
	HiddenFeesImpactPercent float64
}
