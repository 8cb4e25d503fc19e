package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// HistoryRepository define el puerto del libro de historial. El libro es
// derivado: solo el gestor de ciclo de vida escribe en él, nunca la API
// directamente.
type HistoryRepository interface {
	Append(ctx context.Context, h *entity.HistoryEntry) error
	// RemoveByEntryAndType borra a lo sumo un evento del tipo dado para la
	// entrada. No es error que no exista ninguno (remoción idempotente).
	RemoveByEntryAndType(ctx context.Context, entryID, eventType string) error
	DeleteByEntry(ctx context.Context, entryID string) error
	DeleteByItem(ctx context.Context, itemID string) error

	ListByItem(ctx context.Context, itemID string) ([]*entity.HistoryEntry, error)
	ListByEntry(ctx context.Context, entryID string) ([]*entity.HistoryEntry, error)
	// ListRecent lista los eventos más recientes (date desc, id como desempate).
	ListRecent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error)
}
