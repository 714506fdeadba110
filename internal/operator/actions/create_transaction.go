package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

var ErrCategoryNotFound = errors.New("budget category not found")

type CreateTransaction struct {
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	Amount       decimal.Decimal
	Type         string
	Description  string
	MerchantName string
	IsHiddenFee  bool
	IsRecurring  bool
	Date         time.Time

	// ID carries the generated transaction ID back to the caller once the
	// operator has processed the action.
	ID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := insertTransaction(ctx, writer, &sqlconfig.TransactionCreate{
		UserID:       t.UserID,
		CategoryID:   t.CategoryID,
		Amount:       t.Amount,
		Type:         t.Type,
		Description:  t.Description,
		MerchantName: t.MerchantName,
		IsHiddenFee:  t.IsHiddenFee,
		IsRecurring:  t.IsRecurring,
		Date:         t.Date,
	})
	if err != nil {
		return err
	}

	t.ID = id
	return nil
}

// insertTransaction inserts one row and, for categorized expenses, rolls the
// amount into the category's running actual under a row lock.
func insertTransaction(ctx context.Context, writer *storage.Writer, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	id, err := writer.Transactions.Insert(ctx, create)
	if err != nil {
		return uuid.Nil, err
	}

	if create.CategoryID == nil || create.Type != "expense" {
		return id, nil
	}

	category, err := writer.Categories.FindByIDForUpdate(ctx, *create.CategoryID)
	if err != nil {
		return uuid.Nil, err
	}
	if category == nil {
		return uuid.Nil, ErrCategoryNotFound
	}

	newActual := category.ActualAmount.Add(create.Amount)
	if err := writer.Categories.UpdateActualAmount(ctx, category.ID, newActual); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
