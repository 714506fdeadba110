// Package finance holds the pure computation core: window aggregation,
// compound-interest projections, hidden-fee detection, health scoring, and
// trend forecasting. Every function here is deterministic over its inputs and
// performs no I/O; callers fetch the data and hand in plain slices.
package finance

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger line.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction is one ledger line as seen by the computation core.
// Amount is always a non-negative magnitude; the sign is implied by Type.
// The core only reads transactions, it never mutates them.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Type         TransactionType
	Date         time.Time
	Description  string
	MerchantName string
	CategoryID   *uuid.UUID
	IsHiddenFee  bool
	IsRecurring  bool
}

// CategoryType classifies a budget category.
type CategoryType string

const (
	CategoryTypeIncome          CategoryType = "income"
	CategoryTypeFixedExpense    CategoryType = "fixed_expense"
	CategoryTypeVariableExpense CategoryType = "variable_expense"
	CategoryTypeDebt            CategoryType = "debt"
	CategoryTypeInvestment      CategoryType = "investment"
)

// BudgetCategory is a named budget bucket. The core only uses it as a
// grouping key and for budgeted-vs-actual adherence.
type BudgetCategory struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           CategoryType
	BudgetedAmount decimal.Decimal
	ActualAmount   decimal.Decimal
	Color          string
	Icon           string
}

// Window bounds a date range, inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
