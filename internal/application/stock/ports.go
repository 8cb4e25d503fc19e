package stock

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos atados a ella.
// La entrada y su espejo en el historial cambian como una unidad: o se
// confirma todo o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		entries repository.StockEntryRepository,
		history repository.HistoryRepository,
	) error) error
}
