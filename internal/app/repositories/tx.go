package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/adityavkr/hostelhub/internal/db"
)

// TxRunner executes a function against a transaction-bound set of
// repositories. The whole function commits or rolls back as one unit.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

type pgxTxRunner struct {
	db *db.PostgresDB
}

// NewTxRunner creates a TxRunner backed by the PostgreSQL connection pool.
func NewTxRunner(database *db.PostgresDB) TxRunner {
	return &pgxTxRunner{db: database}
}

func (r *pgxTxRunner) InTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}
