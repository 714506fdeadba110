package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

// BudgetCategory represents a budget category in the service layer.
type BudgetCategory struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           string
	BudgetedAmount decimal.Decimal
	ActualAmount   decimal.Decimal
	Color          string
	Icon           string
}

// CategoryCursor identifies a position in a paginated result set.
type CategoryCursor struct {
	Position int
	Limit    int
}

func categoryFromStorage(row *sqlconfig.BudgetCategory) BudgetCategory {
	return BudgetCategory{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		Type:           row.Type,
		BudgetedAmount: row.BudgetedAmount,
		ActualAmount:   row.ActualAmount,
		Color:          row.Color,
		Icon:           row.Icon,
	}
}
