package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

type CreateCategory struct {
	UserID         uuid.UUID
	Name           string
	Type           string
	BudgetedAmount decimal.Decimal
	Color          string
	Icon           string

	// ID carries the generated category ID back to the caller.
	ID uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, &sqlconfig.BudgetCategoryCreate{
		UserID:         c.UserID,
		Name:           c.Name,
		Type:           c.Type,
		BudgetedAmount: c.BudgetedAmount,
		Color:          c.Color,
		Icon:           c.Icon,
	})
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
