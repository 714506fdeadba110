package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wellness-server/internal/finance"
	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

// AnalyticsService runs the read-only analysis stages over a user's history.
// Each request gets its own AnalysisRun which fetches the snapshot once and
// memoizes it for the stages that request invokes; nothing is cached across
// requests.
type AnalyticsService struct {
	storage    *storage.Storage
	fetchLimit int
}

// NewAnalyticsService creates a new AnalyticsService. fetchLimit caps how
// many transactions one run pulls into memory.
func NewAnalyticsService(store *storage.Storage, fetchLimit int) *AnalyticsService {
	return &AnalyticsService{storage: store, fetchLimit: fetchLimit}
}

// AnalysisRun is the per-request snapshot holder. The first stage that needs
// transactions or categories triggers the fetch; later stages in the same run
// reuse it. Not safe for concurrent use; a run serves one request.
type AnalysisRun struct {
	service *AnalyticsService
	userID  uuid.UUID

	transactions []finance.Transaction
	categories   []finance.BudgetCategory
	txFetched    bool
	catFetched   bool
}

// NewRun starts an analysis run for one user.
func (s *AnalyticsService) NewRun(userID uuid.UUID) *AnalysisRun {
	return &AnalysisRun{service: s, userID: userID}
}

func (r *AnalysisRun) fetchTransactions(ctx context.Context) ([]finance.Transaction, error) {
	if r.txFetched {
		return r.transactions, nil
	}

	rows, err := r.service.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID: &r.userID,
		Limit:  r.service.fetchLimit,
	})
	if err != nil {
		return nil, err
	}

	converted := make([]finance.Transaction, len(rows))
	for i, row := range rows {
		converted[i] = finance.Transaction{
			ID:           row.ID,
			UserID:       row.UserID,
			Amount:       row.Amount,
			Type:         finance.TransactionType(row.Type),
			Date:         row.Date,
			Description:  row.Description,
			MerchantName: row.MerchantName,
			CategoryID:   row.CategoryID,
			IsHiddenFee:  row.IsHiddenFee,
			IsRecurring:  row.IsRecurring,
		}
	}

	r.transactions = converted
	r.txFetched = true
	return r.transactions, nil
}

func (r *AnalysisRun) fetchCategories(ctx context.Context) ([]finance.BudgetCategory, error) {
	if r.catFetched {
		return r.categories, nil
	}

	rows, err := r.service.storage.Categories.List(ctx, &sqlconfig.BudgetCategoryFilter{
		UserID: &r.userID,
	})
	if err != nil {
		return nil, err
	}

	converted := make([]finance.BudgetCategory, len(rows))
	for i, row := range rows {
		converted[i] = finance.BudgetCategory{
			ID:             row.ID,
			UserID:         row.UserID,
			Name:           row.Name,
			Type:           finance.CategoryType(row.Type),
			BudgetedAmount: row.BudgetedAmount,
			ActualAmount:   row.ActualAmount,
			Color:          row.Color,
			Icon:           row.Icon,
		}
	}

	r.categories = converted
	r.catFetched = true
	return r.categories, nil
}

// Summary aggregates a window of the run's transactions.
func (r *AnalysisRun) Summary(ctx context.Context, filter finance.AggregateFilter) (finance.Summary, error) {
	transactions, err := r.fetchTransactions(ctx)
	if err != nil {
		return finance.Summary{}, err
	}

	return finance.Aggregate(transactions, filter), nil
}

// Fees detects hidden fees across the run's transactions and applies the
// view filter afterwards.
func (r *AnalysisRun) Fees(ctx context.Context, filter FeeFilter) ([]finance.DetectedFee, error) {
	transactions, err := r.fetchTransactions(ctx)
	if err != nil {
		return nil, err
	}

	detected := finance.DetectFees(transactions, finance.DetectOptions{Deduplicate: filter.Deduplicate})

	filtered := make([]finance.DetectedFee, 0, len(detected))
	for _, fee := range detected {
		if filter.FeeType != nil && fee.FeeType != *filter.FeeType {
			continue
		}
		if filter.MinAmount != nil && fee.Amount.LessThan(*filter.MinAmount) {
			continue
		}
		if filter.MinConfidence != nil && fee.Confidence < *filter.MinConfidence {
			continue
		}
		filtered = append(filtered, fee)
	}

	return filtered, nil
}

// Health derives the four metrics from the run's snapshot and scores them.
// The emergency fund is a request input, not stored state.
func (r *AnalysisRun) Health(ctx context.Context, request HealthRequest) (HealthResult, error) {
	transactions, err := r.fetchTransactions(ctx)
	if err != nil {
		return HealthResult{}, err
	}
	categories, err := r.fetchCategories(ctx)
	if err != nil {
		return HealthResult{}, err
	}

	summary := finance.Aggregate(transactions, finance.AggregateFilter{
		Window:            request.Window,
		IncludeHiddenFees: true,
	})

	emergencyMonths := 0.0
	if summary.Expenses.IsPositive() {
		months, _ := request.EmergencyFund.Div(summary.Expenses).Float64()
		emergencyMonths = months
	}

	feeImpact := 0.0
	if summary.Income.IsPositive() {
		impact, _ := summary.HiddenFeesTotal.Div(summary.Income).Float64()
		feeImpact = impact * 100
	}

	input := finance.HealthInput{
		SavingsRate:             summary.SavingsRate,
		EmergencyFundMonths:     emergencyMonths,
		BudgetAdherence:         finance.AdherenceFraction(categories),
		HiddenFeesImpactPercent: feeImpact,
	}

	return HealthResult{
		Score:                   finance.ScoreHealth(input),
		SavingsRate:             input.SavingsRate,
		EmergencyFundMonths:     input.EmergencyFundMonths,
		BudgetAdherence:         input.BudgetAdherence,
		HiddenFeesImpactPercent: input.HiddenFeesImpactPercent,
	}, nil
}

// Forecast produces trend predictions from the run's snapshot.
func (r *AnalysisRun) Forecast(ctx context.Context, now time.Time) ([]finance.Prediction, error) {
	transactions, err := r.fetchTransactions(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := r.fetchCategories(ctx)
	if err != nil {
		return nil, err
	}

	return finance.Forecast(transactions, categories, now), nil
}
