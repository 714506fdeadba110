package actions

import (
	"context"

	"github.com/carson-networks/wellness-server/internal/storage"
	"github.com/carson-networks/wellness-server/internal/storage/sqlconfig"
)

// ImportTransactions inserts a pre-validated batch atomically. Rows that fail
// boundary parsing never reach this action; the service counts them instead.
type ImportTransactions struct {
	Creates []*sqlconfig.TransactionCreate

	// Inserted is set to the number of rows written once the batch commits.
	Inserted int
}

func (t *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	for _, create := range t.Creates {
		if _, err := insertTransaction(ctx, writer, create); err != nil {
			return err
		}
	}

	t.Inserted = len(t.Creates)
	return nil
}
