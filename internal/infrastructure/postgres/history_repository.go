package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

const historyColumns = `id, date, type, entry, item, "user"`

// HistoryRepo implementación del puerto HistoryRepository sobre PostgreSQL.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Append añade un evento al libro.
func (r *HistoryRepo) Append(ctx context.Context, h *entity.HistoryEntry) error {
	query := `INSERT INTO history_entries (` + historyColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, h.ID, h.Date, h.Type, h.Entry, h.Item, h.User)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// RemoveByEntryAndType borra el evento del tipo dado para la entrada.
// Cero filas afectadas no es error: la remoción es idempotente.
func (r *HistoryRepo) RemoveByEntryAndType(ctx context.Context, entryID, eventType string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM history_entries WHERE entry = $1 AND type = $2`, entryID, eventType)
	if err != nil {
		return fmt.Errorf("remove history entry: %w", err)
	}
	return nil
}

// DeleteByEntry borra todos los eventos de una entrada de stock.
func (r *HistoryRepo) DeleteByEntry(ctx context.Context, entryID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM history_entries WHERE entry = $1`, entryID); err != nil {
		return fmt.Errorf("delete history by entry: %w", err)
	}
	return nil
}

// DeleteByItem borra todos los eventos que referencian a un item, directamente
// por la columna item (no a través de las entradas).
func (r *HistoryRepo) DeleteByItem(ctx context.Context, itemID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM history_entries WHERE item = $1`, itemID); err != nil {
		return fmt.Errorf("delete history by item: %w", err)
	}
	return nil
}

// ListByItem lista los eventos de todas las entradas de un item (date asc).
func (r *HistoryRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+historyColumns+` FROM history_entries WHERE item = $1 ORDER BY date, id`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list history by item: %w", err)
	}
	return scanHistoryEntries(rows)
}

// ListByEntry lista los eventos de una entrada de stock (date asc).
func (r *HistoryRepo) ListByEntry(ctx context.Context, entryID string) ([]*entity.HistoryEntry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+historyColumns+` FROM history_entries WHERE entry = $1 ORDER BY date, id`, entryID)
	if err != nil {
		return nil, fmt.Errorf("list history by entry: %w", err)
	}
	return scanHistoryEntries(rows)
}

// ListRecent lista los eventos más recientes (date desc).
func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+historyColumns+` FROM history_entries ORDER BY date DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent history: %w", err)
	}
	return scanHistoryEntries(rows)
}

func scanHistoryEntries(rows pgx.Rows) ([]*entity.HistoryEntry, error) {
	defer rows.Close()
	var list []*entity.HistoryEntry
	for rows.Next() {
		var h entity.HistoryEntry
		if err := rows.Scan(&h.ID, &h.Date, &h.Type, &h.Entry, &h.Item, &h.User); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
