package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BudgetCategory represents a budget category record.
type BudgetCategory struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	Name           string          `db:"name"`
	Type           string          `db:"type"`
	BudgetedAmount decimal.Decimal `db:"budgeted_amount"`
	ActualAmount   decimal.Decimal `db:"actual_amount"`
	Color          string          `db:"color"`
	Icon           string          `db:"icon"`
	CreatedAt      time.Time       `db:"created_at"`
}

// BudgetCategoryCreate is the input for creating a new budget category.
type BudgetCategoryCreate struct {
	UserID         uuid.UUID
	Name           string
	Type           string
	BudgetedAmount decimal.Decimal
	Color          string
	Icon           string
}

// BudgetCategoryFilter specifies filters for listing budget categories.
type BudgetCategoryFilter struct {
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// ICategoryTable defines the interface for budget category storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BudgetCategory, error)
	Insert(ctx context.Context, create *BudgetCategoryCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *BudgetCategoryFilter) ([]*BudgetCategory, error)
	UpdateActualAmount(ctx context.Context, id uuid.UUID, actual decimal.Decimal) error
}
