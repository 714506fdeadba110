package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []string{
	"id", "user_id", "category_id", "amount", "type", "description",
	"merchant_name", "is_hidden_fee", "is_recurring", "transaction_date",
	"created_at",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(transactionColumns)...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	date := create.Date
	if date.IsZero() {
		date = time.Now()
	}

	query := psql.Insert(
		im.Into("transactions",
			"user_id", "category_id", "amount", "type", "description",
			"merchant_name", "is_hidden_fee", "is_recurring", "transaction_date",
		),
		im.Values(psql.Arg(
			create.UserID, create.CategoryID, create.Amount, create.Type,
			create.Description, create.MerchantName, create.IsHiddenFee,
			create.IsRecurring, date,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest first. Nil filter
// returns all. A positive Limit fetches one extra row so callers can probe
// for a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(transactionColumns)...),
		sm.From("transactions"),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func toAnySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = psql.Quote(c)
	}
	return out
}
