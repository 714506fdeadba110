package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wellness-server/internal/operator/actions"
	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic. Writes go through
// the operator queue so category actuals stay consistent under concurrency.
type TransactionService struct {
	storage   *storage.Storage
	delegator IDelegator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, delegator IDelegator) *TransactionService {
	return &TransactionService{storage: store, delegator: delegator}
}

// CreateTransaction creates a new transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error) {
	action := &actions.CreateTransaction{
		UserID:       transaction.UserID,
		CategoryID:   transaction.CategoryID,
		Amount:       transaction.Amount,
		Type:         transaction.Type,
		Description:  transaction.Description,
		MerchantName: transaction.MerchantName,
		IsHiddenFee:  transaction.IsHiddenFee,
		IsRecurring:  transaction.IsRecurring,
		Date:         transaction.Date,
	}

	if err := s.delegator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	return action.ID, nil
}

// ImportTransactions inserts a pre-validated batch in one write transaction
// and reports how many rows went in alongside the caller's skipped count.
func (s *TransactionService) ImportTransactions(ctx context.Context, transactions []Transaction, skipped int) (ImportResult, error) {
	creates := make([]*sqlconfig.TransactionCreate, len(transactions))
	for i, transaction := range transactions {
		creates[i] = &sqlconfig.TransactionCreate{
			UserID:       transaction.UserID,
			CategoryID:   transaction.CategoryID,
			Amount:       transaction.Amount,
			Type:         transaction.Type,
			Description:  transaction.Description,
			MerchantName: transaction.MerchantName,
			IsHiddenFee:  transaction.IsHiddenFee,
			IsRecurring:  transaction.IsRecurring,
			Date:         transaction.Date,
		}
	}

	action := &actions.ImportTransactions{Creates: creates}
	if err := s.delegator.Process(ctx, action); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{Inserted: action.Inserted, Skipped: skipped}, nil
}

// ListTransactions returns a page of a user's transactions using
// cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          &userID,
		CategoryID:      categoryID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}
