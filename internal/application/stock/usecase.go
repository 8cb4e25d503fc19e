// Package stock contiene el gestor del ciclo de vida de las entradas de
// stock: añadida → abierta → consumida, con su espejo en el historial.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
	"github.com/jhoicas/hamster-api/pkg/logger"
)

// UseCase gestiona las transiciones de estado de StockEntry y garantiza que
// cada cambio de flag se refleje exactamente una vez en el historial.
//
// Toda mutación corre dentro de una transacción y el update bloquea la fila
// (FOR UPDATE), así dos updates concurrentes sobre la misma entrada se
// serializan y el diff de flags nunca parte de un estado previo obsoleto.
type UseCase struct {
	tx      TxRunner
	entries repository.StockEntryRepository
	log     *logger.Logger
}

// NewUseCase construye el gestor de ciclo de vida.
func NewUseCase(tx TxRunner, entries repository.StockEntryRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, entries: entries, log: log}
}

// ListByItem lista las entradas de un item; onlyActive filtra a no consumidas.
func (uc *UseCase) ListByItem(ctx context.Context, itemID string, onlyActive bool) ([]dto.StockEntryResponse, error) {
	list, err := uc.entries.ListByItem(ctx, itemID, onlyActive)
	if err != nil {
		return nil, err
	}
	return dto.StockEntryResponsesFrom(list), nil
}

// Create crea una entrada bajo el item dado y emite siempre el evento "added".
// El item debe existir (ErrNotFound) y bestBefore es obligatorio
// (ErrInvalidInput); la hora se trunca al inicio del día.
func (uc *UseCase) Create(ctx context.Context, itemID string, in dto.CreateStockEntryRequest, userID string) (*dto.StockEntryResponse, error) {
	if in.BestBefore == nil || in.BestBefore.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	entry := &entity.StockEntry{
		ID:         uuid.New().String(),
		Item:       itemID,
		BestBefore: startOfDay(*in.BestBefore),
		Location:   in.Location,
		Price:      in.Price,
		Store:      in.Store,
		Opened:     in.Opened,
		Consumed:   in.Consumed,
	}

	err := uc.tx.Run(ctx, func(
		items repository.ItemRepository,
		entries repository.StockEntryRepository,
		history repository.HistoryRepository,
	) error {
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := entries.Create(ctx, entry); err != nil {
			return err
		}
		return history.Append(ctx, newEvent(entity.HistoryAdded, entry.ID, itemID, userID))
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("entry", entry.ID).Str("item", itemID).Msg("entrada de stock creada")
	resp := dto.StockEntryResponseFrom(entry)
	return &resp, nil
}

// Update aplica una actualización parcial y deriva los eventos de historial.
//
// Regla de transición, por flag e independiente entre flags:
//   - false→true: se añade un evento del tipo correspondiente
//   - true→false: se borra el (único) evento de ese tipo para la entrada
//   - sin cambio: el historial no se toca
func (uc *UseCase) Update(ctx context.Context, entryID string, in dto.UpdateStockEntryRequest, userID string) (*dto.StockEntryResponse, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var updated entity.StockEntry
	err := uc.tx.Run(ctx, func(
		_ repository.ItemRepository,
		entries repository.StockEntryRepository,
		history repository.HistoryRepository,
	) error {
		entry, err := entries.GetByIDForUpdate(ctx, entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		prevOpened, prevConsumed := entry.Opened, entry.Consumed

		if in.BestBefore != nil {
			entry.BestBefore = startOfDay(*in.BestBefore)
		}
		if in.Location != nil {
			entry.Location = in.Location
		}
		if in.Price != nil {
			entry.Price = in.Price
		}
		if in.Store != nil {
			entry.Store = in.Store
		}
		if in.Opened != nil {
			entry.Opened = *in.Opened
		}
		if in.Consumed != nil {
			entry.Consumed = *in.Consumed
		}

		if err := entries.Update(ctx, entry); err != nil {
			return err
		}

		if err := uc.mirrorFlag(ctx, history, entry, prevOpened, entry.Opened, entity.HistoryOpened, userID); err != nil {
			return err
		}
		if err := uc.mirrorFlag(ctx, history, entry, prevConsumed, entry.Consumed, entity.HistoryConsumed, userID); err != nil {
			return err
		}

		updated = *entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("entry", updated.ID).Msg("entrada de stock actualizada")
	resp := dto.StockEntryResponseFrom(&updated)
	return &resp, nil
}

// Delete elimina la entrada y todo su historial. Devuelve la entrada borrada.
func (uc *UseCase) Delete(ctx context.Context, entryID string) (*dto.StockEntryResponse, error) {
	var deleted entity.StockEntry
	err := uc.tx.Run(ctx, func(
		_ repository.ItemRepository,
		entries repository.StockEntryRepository,
		history repository.HistoryRepository,
	) error {
		entry, err := entries.GetByIDForUpdate(ctx, entryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if err := entries.Delete(ctx, entryID); err != nil {
			return err
		}
		if err := history.DeleteByEntry(ctx, entryID); err != nil {
			return err
		}
		deleted = *entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("entry", deleted.ID).Msg("entrada de stock e historial eliminados")
	resp := dto.StockEntryResponseFrom(&deleted)
	return &resp, nil
}

// mirrorFlag refleja la transición de un flag binario en el historial.
func (uc *UseCase) mirrorFlag(
	ctx context.Context,
	history repository.HistoryRepository,
	entry *entity.StockEntry,
	prev, cur bool,
	eventType, userID string,
) error {
	switch {
	case !prev && cur:
		return history.Append(ctx, newEvent(eventType, entry.ID, entry.Item, userID))
	case prev && !cur:
		return history.RemoveByEntryAndType(ctx, entry.ID, eventType)
	default:
		return nil
	}
}

func newEvent(eventType, entryID, itemID, userID string) *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ID:    uuid.New().String(),
		Date:  time.Now(),
		Type:  eventType,
		Entry: entryID,
		Item:  itemID,
		User:  userID,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
