package finance

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Summary holds window-scoped totals derived from a transaction slice.
type Summary struct {
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	Balance         decimal.Decimal
	SavingsRate     float64
	HiddenFeesTotal decimal.Decimal
}

// AggregateFilter narrows which transactions feed the income/expense sums.
// HiddenFeesTotal is always window-scoped only: it ignores CategoryID and
// IncludeHiddenFees so the fee total stays comparable across filtered views.
type AggregateFilter struct {
	Window            Window
	CategoryID        *uuid.UUID
	IncludeHiddenFees bool
}

// Aggregate sums a transaction slice into income, expenses, balance, savings
// rate, and the window's hidden-fee total. SavingsRate is 0 when there is no
// income; division by zero is never surfaced as NaN or an error.
func Aggregate(transactions []Transaction, filter AggregateFilter) Summary {
	summary := Summary{
		Income:          decimal.Zero,
		Expenses:        decimal.Zero,
		HiddenFeesTotal: decimal.Zero,
	}

	for _, tx := range transactions {
		if !filter.Window.Contains(tx.Date) {
			continue
		}

		if tx.IsHiddenFee {
			summary.HiddenFeesTotal = summary.HiddenFeesTotal.Add(tx.Amount)
		}

		if filter.CategoryID != nil {
			if tx.CategoryID == nil || *tx.CategoryID != *filter.CategoryID {
				continue
			}
		}
		if !filter.IncludeHiddenFees && tx.IsHiddenFee {
			continue
		}

		switch tx.Type {
		case TransactionTypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			summary.Expenses = summary.Expenses.Add(tx.Amount)
		}
	}

	summary.Balance = summary.Income.Sub(summary.Expenses)

	if summary.Income.IsPositive() {
		balance, _ := summary.Balance.Float64()
		income, _ := summary.Income.Float64()
		summary.SavingsRate = balance / income * 100
	}

	return summary
}
