package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []string{
	"id", "user_id", "name", "type", "budgeted_amount", "actual_amount",
	"color", "icon", "created_at",
}

type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a budget category by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*BudgetCategory, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("budget_categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[BudgetCategory]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDForUpdate retrieves a category with a row lock, for use inside a
// write transaction that will adjust the running actual amount.
func (t *CategoriesTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*BudgetCategory, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("budget_categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[BudgetCategory]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new budget category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *BudgetCategoryCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("budget_categories",
			"user_id", "name", "type", "budgeted_amount", "color", "icon",
		),
		im.Values(psql.Arg(
			create.UserID, create.Name, create.Type, create.BudgetedAmount,
			create.Color, create.Icon,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns budget categories matching the filter, name order. A positive
// Limit fetches one extra row so callers can probe for a next page.
func (t *CategoriesTable) List(ctx context.Context, filter *BudgetCategoryFilter) ([]*BudgetCategory, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("budget_categories"),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[BudgetCategory]())
	if err != nil {
		return nil, err
	}

	result := make([]*BudgetCategory, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// UpdateActualAmount overwrites the running actual amount for a category.
func (t *CategoriesTable) UpdateActualAmount(ctx context.Context, id uuid.UUID, actual decimal.Decimal) error {
	query := psql.Update(
		um.Table("budget_categories"),
		um.SetCol("actual_amount").ToArg(actual),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
