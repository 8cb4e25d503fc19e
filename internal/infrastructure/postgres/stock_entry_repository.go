package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

const stockEntryColumns = `id, item, best_before, location, price, store, opened, consumed`

// StockEntryRepo implementación del puerto StockEntryRepository sobre PostgreSQL.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create persiste una nueva entrada de stock.
func (r *StockEntryRepo) Create(ctx context.Context, e *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (` + stockEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Item, e.BestBefore, e.Location, e.Price, e.Store, e.Opened, e.Consumed,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *StockEntryRepo) GetByID(ctx context.Context, id string) (*entity.StockEntry, error) {
	row := r.q.QueryRow(ctx, `SELECT `+stockEntryColumns+` FROM stock_entries WHERE id = $1`, id)
	return scanStockEntry(row)
}

// GetByIDForUpdate lee la entrada bloqueando la fila hasta el fin de la
// transacción. Solo tiene sentido dentro de un TxRunner.
func (r *StockEntryRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.StockEntry, error) {
	row := r.q.QueryRow(ctx, `SELECT `+stockEntryColumns+` FROM stock_entries WHERE id = $1 FOR UPDATE`, id)
	return scanStockEntry(row)
}

// Update actualiza una entrada existente.
func (r *StockEntryRepo) Update(ctx context.Context, e *entity.StockEntry) error {
	query := `
		UPDATE stock_entries SET best_before = $2, location = $3, price = $4, store = $5, opened = $6, consumed = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, e.ID, e.BestBefore, e.Location, e.Price, e.Store, e.Opened, e.Consumed)
	if err != nil {
		return fmt.Errorf("update stock entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *StockEntryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}

// DeleteByItem elimina todas las entradas de un item (cascada de borrado).
func (r *StockEntryRepo) DeleteByItem(ctx context.Context, itemID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_entries WHERE item = $1`, itemID); err != nil {
		return fmt.Errorf("delete stock entries by item: %w", err)
	}
	return nil
}

// ListByItem lista las entradas de un item; con onlyActive solo las no consumidas.
func (r *StockEntryRepo) ListByItem(ctx context.Context, itemID string, onlyActive bool) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE item = $1`
	if onlyActive {
		query += ` AND NOT consumed`
	}
	query += ` ORDER BY best_before, id`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	return scanStockEntries(rows)
}

// ListExpiring lista las entradas con best_before <= until, ascendente.
// Incluye las consumidas: el vencimiento es independiente del consumo.
func (r *StockEntryRepo) ListExpiring(ctx context.Context, until time.Time) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries
		WHERE best_before <= $1 ORDER BY best_before, id`
	rows, err := r.q.Query(ctx, query, until)
	if err != nil {
		return nil, fmt.Errorf("list expiring stock entries: %w", err)
	}
	return scanStockEntries(rows)
}

// CountActive cuenta las entradas no consumidas de un item.
func (r *StockEntryRepo) CountActive(ctx context.Context, itemID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_entries WHERE item = $1 AND NOT consumed`, itemID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active stock: %w", err)
	}
	return n, nil
}

// CountActiveTotal cuenta las entradas no consumidas de toda la despensa.
func (r *StockEntryRepo) CountActiveTotal(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_entries WHERE NOT consumed`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active stock total: %w", err)
	}
	return n, nil
}

// ActiveCounts devuelve item -> entradas no consumidas en una sola consulta agrupada.
func (r *StockEntryRepo) ActiveCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT item, count(*) FROM stock_entries WHERE NOT consumed GROUP BY item`)
	if err != nil {
		return nil, fmt.Errorf("active counts: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var item string
		var n int
		if err := rows.Scan(&item, &n); err != nil {
			return nil, fmt.Errorf("scan active count: %w", err)
		}
		counts[item] = n
	}
	return counts, rows.Err()
}

// ActiveCountsByGroup devuelve group -> suma de entradas no consumidas de sus
// items, con un join agrupado en lugar de iterar item por item.
func (r *StockEntryRepo) ActiveCountsByGroup(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT i.item_group, count(*)
		FROM stock_entries e
		JOIN items i ON i.id = e.item
		WHERE NOT e.consumed AND i.item_group IS NOT NULL
		GROUP BY i.item_group`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("active counts by group: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var group string
		var n int
		if err := rows.Scan(&group, &n); err != nil {
			return nil, fmt.Errorf("scan group count: %w", err)
		}
		counts[group] = n
	}
	return counts, rows.Err()
}

// ClearLocation anula la ubicación en las entradas que la referencian.
func (r *StockEntryRepo) ClearLocation(ctx context.Context, locationID string) error {
	_, err := r.q.Exec(ctx, `UPDATE stock_entries SET location = NULL WHERE location = $1`, locationID)
	if err != nil {
		return fmt.Errorf("clear stock entry location: %w", err)
	}
	return nil
}

func scanStockEntry(row pgx.Row) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := row.Scan(&e.ID, &e.Item, &e.BestBefore, &e.Location, &e.Price, &e.Store, &e.Opened, &e.Consumed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan stock entry: %w", err)
	}
	return &e, nil
}

func scanStockEntries(rows pgx.Rows) ([]*entity.StockEntry, error) {
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.Item, &e.BestBefore, &e.Location, &e.Price, &e.Store, &e.Opened, &e.Consumed); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
