package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	CategoryID   *uuid.UUID      `db:"category_id"`
	Amount       decimal.Decimal `db:"amount"`
	Type         string          `db:"type"`
	Description  string          `db:"description"`
	MerchantName string          `db:"merchant_name"`
	IsHiddenFee  bool            `db:"is_hidden_fee"`
	IsRecurring  bool            `db:"is_recurring"`
	Date         time.Time       `db:"transaction_date"`
	CreatedAt    time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	Amount       decimal.Decimal
	Type         string
	Description  string
	MerchantName string
	IsHiddenFee  bool
	IsRecurring  bool
	Date         time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
