package usecase

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// CascadeRunner ejecuta los borrados con cascada pesada dentro de una
// transacción: el borrado primario y sus escrituras secundarias se confirman
// juntos. Las cascadas de una sola escritura (categoría/grupo/unidad/etiqueta
// sobre items) quedan fuera: son best-effort y solo se registran en el log.
type CascadeRunner interface {
	// RunItemDelete: borrar un item arrastra sus entradas de stock y todo el
	// historial que referencia al item.
	RunItemDelete(ctx context.Context, fn func(
		items repository.ItemRepository,
		entries repository.StockEntryRepository,
		history repository.HistoryRepository,
	) error) error

	// RunLocationDelete: borrar una ubicación anula las referencias en items,
	// grupos, entradas de stock y en sus hijas directas.
	RunLocationDelete(ctx context.Context, fn func(
		locations repository.StorageLocationRepository,
		items repository.ItemRepository,
		groups repository.GroupRepository,
		entries repository.StockEntryRepository,
	) error) error
}
