package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/iho/nexusbank/internal/usecase"
)

type pgxPool interface {
	Begin(context.Context) (pgx.Tx, error)
}

// TxManager implements usecase.TransactionManager. Serialization failures,
// deadlocks and stale account versions restart the whole unit of work.
type TxManager struct {
	pool    pgxPool
	retrier *Retrier
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, retrier *Retrier) *TxManager {
	return newTxManagerWithPool(pool, retrier)
}

func newTxManagerWithPool(pool pgxPool, retrier *Retrier) *TxManager {
	if retrier == nil {
		retrier = NewRetrier()
	}
	return &TxManager{pool: pool, retrier: retrier}
}

// WithinTransaction runs fn in a transaction. A ctx that already carries a
// transaction joins it instead of starting a new one.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	var runHooks func(context.Context)
	err := m.retrier.Retry(ctx, func() error {
		// Hooks from an attempt that rolled back are discarded.
		var attemptCtx context.Context
		attemptCtx, runHooks = usecase.WithCommitHooks(ctx)
		return m.run(attemptCtx, fn)
	})
	if err != nil {
		return err
	}

	runHooks(context.WithoutCancel(ctx))
	return nil
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, usecase.DefaultTransactionTimeout)
	defer cancel()

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Warn().Err(rbErr).Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
