package pgxstorage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TransactionsManager runs storage work atomically. The webhook ingestion
// leg depends on it: the status re-read, the audit insert, and the status
// update must commit or roll back together.
type TransactionsManager struct {
	storage *DBStorage
}

func NewTransactionsManager(storage *DBStorage) *TransactionsManager {
	return &TransactionsManager{
		storage: storage,
	}
}

// DoWithTransaction opens a transaction, runs f with it carried in the
// context, and commits. Any error from f or from the commit rolls the
// transaction back and is returned to the caller.
func (tm *TransactionsManager) DoWithTransaction(
	ctx context.Context,
	f func(ctx context.Context) error,
) error {
	ctxWithTransaction, tx, err := tm.storage.withTransaction(ctx)
	if err != nil {
		return err
	}

	if err := f(ctxWithTransaction); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return rollback(tx, fmt.Errorf("transaction commit failed: %w", err))
	}
	return nil
}

func rollback(tx pgx.Tx, cause error) error {
	if rollbackErr := tx.Rollback(context.Background()); rollbackErr != nil {
		return fmt.Errorf("transaction rollback failed: %w, rollback caused by %w", rollbackErr, cause)
	}
	return cause
}
