package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/wellness-server/internal/config"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           bob.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           bobDB,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Categories:   sqlconfig.NewCategoriesTable(bobDB),
	}
}

// Write opens a transaction-scoped writer. Callers must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
