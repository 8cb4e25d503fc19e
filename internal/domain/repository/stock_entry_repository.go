package repository

import (
	"context"
	"time"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// StockEntryRepository define el puerto de persistencia para StockEntry.
type StockEntryRepository interface {
	Create(ctx context.Context, e *entity.StockEntry) error
	GetByID(ctx context.Context, id string) (*entity.StockEntry, error)
	// GetByIDForUpdate lee la entrada bloqueando la fila (SELECT FOR UPDATE).
	// Serializa los update concurrentes sobre la misma entrada para que el
	// diff opened/consumed nunca vea un estado previo obsoleto.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.StockEntry, error)
	Update(ctx context.Context, e *entity.StockEntry) error
	Delete(ctx context.Context, id string) error
	DeleteByItem(ctx context.Context, itemID string) error

	// ListByItem lista las entradas de un item; con onlyActive solo las no consumidas.
	ListByItem(ctx context.Context, itemID string, onlyActive bool) ([]*entity.StockEntry, error)
	// ListExpiring lista las entradas con bestBefore <= until (ascendente por
	// fecha), consumidas incluidas: el vencimiento es independiente del consumo.
	ListExpiring(ctx context.Context, until time.Time) ([]*entity.StockEntry, error)

	// CountActive cuenta las entradas no consumidas de un item.
	CountActive(ctx context.Context, itemID string) (int, error)
	// CountActiveTotal cuenta las entradas no consumidas de toda la despensa.
	CountActiveTotal(ctx context.Context) (int, error)
	// ActiveCounts devuelve item id -> número de entradas no consumidas, en una sola consulta agrupada.
	ActiveCounts(ctx context.Context) (map[string]int, error)
	// ActiveCountsByGroup devuelve group id -> suma de entradas no consumidas de sus items,
	// en una sola consulta agrupada (sin iterar item por item).
	ActiveCountsByGroup(ctx context.Context) (map[string]int, error)

	ClearLocation(ctx context.Context, locationID string) error
}
