package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

var _ ports.BusinessTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunForOwner inicia una transacción, toma un advisory lock por dueño (se libera en el
// commit/rollback) y ejecuta fn con repos atados a la tx.
func (r *TxRunner) RunForOwner(ctx context.Context, ownerID string, fn func(
	profiles repository.ProfileRepository,
	businesses repository.BusinessRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "business:"+ownerID); err != nil {
		return wrapErr("lock owner", err)
	}

	if err := fn(NewProfileRepository(tx), NewBusinessRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
