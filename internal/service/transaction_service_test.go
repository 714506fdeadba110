package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/wellness-server/internal/operator/actions"
	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

func newTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable, *MockIDelegator) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	mockDelegator := NewMockIDelegator(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewTransactionService(store, mockDelegator)
	return svc, mockTable, mockDelegator
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, _, mockDelegator := newTestService(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("42.50")
	txDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expectedID := uuid.Must(uuid.NewV4())

	mockDelegator.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.UserID == userID &&
			create.CategoryID != nil && *create.CategoryID == categoryID &&
			create.Amount.Equal(amount) &&
			create.Type == "expense" &&
			create.Description == "Groceries" &&
			create.Date.Equal(txDate)
	})).Run(func(_ context.Context, a actions.IAction) {
		a.(*actions.CreateTransaction).ID = expectedID
	}).Return(nil)

	id, err := svc.CreateTransaction(context.Background(), Transaction{
		UserID:      userID,
		CategoryID:  &categoryID,
		Amount:      amount,
		Type:        "expense",
		Description: "Groceries",
		Date:        txDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestCreateTransaction_QueueError(t *testing.T) {
	svc, _, mockDelegator := newTestService(t)

	mockDelegator.EXPECT().Process(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	id, err := svc.CreateTransaction(context.Background(), Transaction{
		UserID:      uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString("10.00"),
		Type:        "expense",
		Description: "Test",
	})

	assert.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.Equal(t, uuid.Nil, id)
}

// -- ImportTransactions tests --

func TestImportTransactions_Success(t *testing.T) {
	svc, _, mockDelegator := newTestService(t)

	userID := uuid.Must(uuid.NewV4())
	batch := []Transaction{
		{UserID: userID, Amount: decimal.RequireFromString("9.99"), Type: "expense", Description: "A"},
		{UserID: userID, Amount: decimal.RequireFromString("1200.00"), Type: "income", Description: "B"},
	}

	mockDelegator.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		imp, ok := a.(*actions.ImportTransactions)
		return ok && len(imp.Creates) == 2 &&
			imp.Creates[0].Description == "A" &&
			imp.Creates[1].Type == "income"
	})).Run(func(_ context.Context, a actions.IAction) {
		imp := a.(*actions.ImportTransactions)
		imp.Inserted = len(imp.Creates)
	}).Return(nil)

	result, err := svc.ImportTransactions(context.Background(), batch, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 3, result.Skipped)
}

func TestImportTransactions_QueueError(t *testing.T) {
	svc, _, mockDelegator := newTestService(t)

	mockDelegator.EXPECT().Process(mock.Anything, mock.Anything).
		Return(errors.New("queue closed"))

	result, err := svc.ImportTransactions(context.Background(), []Transaction{{}}, 0)

	assert.Error(t, err)
	assert.Equal(t, ImportResult{}, result)
}

// -- ListTransactions tests --

func makeStorageRows(n int, userID uuid.UUID, createdAt time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			UserID:      userID,
			Amount:      decimal.RequireFromString("5.00"),
			Type:        "expense",
			Description: "Item",
			Date:        createdAt,
			CreatedAt:   createdAt,
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), nil, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_DefaultLimit(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	userID := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0 &&
			f.UserID != nil && *f.UserID == userID &&
			f.MaxCreationTime == nil
	})).Return(makeStorageRows(5, userID, time.Now()), nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 5)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_NextPageCursor(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	userID := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	// limit+1 rows returned means another page exists.
	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(makeStorageRows(11, userID, createdAt), nil)

	cursor := &TransactionCursor{Position: 0, Limit: 10, MaxCreationTime: createdAt}
	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil, cursor)

	assert.NoError(t, err)
	assert.Len(t, txs, 10)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 10, nextCursor.Position)
	assert.Equal(t, 10, nextCursor.Limit)
	assert.Equal(t, createdAt, nextCursor.MaxCreationTime)
}

func TestListTransactions_FirstPagePinsMaxCreationTime(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	userID := uuid.Must(uuid.NewV4())
	newest := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.MaxCreationTime == nil
	})).Return(makeStorageRows(21, userID, newest), nil)

	_, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil, nil)

	assert.NoError(t, err)
	assert.NotNil(t, nextCursor)
	// First page pins the newest row's creation time so later pages stay stable.
	assert.Equal(t, newest, nextCursor.MaxCreationTime)
}

func TestListTransactions_CategoryFilterPassedThrough(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID
	})).Return(makeStorageRows(1, userID, time.Now()), nil)

	txs, _, err := svc.ListTransactions(context.Background(), userID, &categoryID, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("relation does not exist"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), nil, nil)

	assert.Error(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}
