package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/hamster-api/internal/application/stock"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and usecase.CascadeRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ usecase.CascadeRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del ciclo de vida de stock atados
// a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	entries repository.StockEntryRepository,
	history repository.HistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewStockEntryRepository(tx), NewHistoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunItemDelete transacción para el borrado en cascada de un item.
func (r *TxRunner) RunItemDelete(ctx context.Context, fn func(
	items repository.ItemRepository,
	entries repository.StockEntryRepository,
	history repository.HistoryRepository,
) error) error {
	return r.Run(ctx, fn)
}

// RunLocationDelete transacción para el borrado de una ubicación con la
// anulación de todas sus referencias.
func (r *TxRunner) RunLocationDelete(ctx context.Context, fn func(
	locations repository.StorageLocationRepository,
	items repository.ItemRepository,
	groups repository.GroupRepository,
	entries repository.StockEntryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLocationRepository(tx), NewItemRepository(tx), NewGroupRepository(tx), NewStockEntryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
