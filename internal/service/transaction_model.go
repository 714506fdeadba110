package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	Amount       decimal.Decimal
	Type         string
	Description  string
	MerchantName string
	IsHiddenFee  bool
	IsRecurring  bool
	Date         time.Time
	CreatedAt    time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// ImportResult reports the outcome of a bulk import. Skipped counts rows the
// boundary layer rejected before they reached the batch.
type ImportResult struct {
	Inserted int
	Skipped  int
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:           row.ID,
		UserID:       row.UserID,
		CategoryID:   row.CategoryID,
		Amount:       row.Amount,
		Type:         row.Type,
		Description:  row.Description,
		MerchantName: row.MerchantName,
		IsHiddenFee:  row.IsHiddenFee,
		IsRecurring:  row.IsRecurring,
		Date:         row.Date,
		CreatedAt:    row.CreatedAt,
	}
}
