// Package history expone el libro de historial en modo solo lectura.
// Las escrituras son exclusivas del gestor de ciclo de vida de stock.
package history

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// UseCase consultas del historial por item o por entrada de stock.
type UseCase struct {
	repo repository.HistoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.HistoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ByItem lista los eventos de todas las entradas de un item.
func (uc *UseCase) ByItem(ctx context.Context, itemID string) ([]dto.HistoryResponse, error) {
	list, err := uc.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return dto.HistoryResponsesFrom(list), nil
}

// ByEntry lista los eventos de una entrada de stock.
func (uc *UseCase) ByEntry(ctx context.Context, entryID string) ([]dto.HistoryResponse, error) {
	list, err := uc.repo.ListByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return dto.HistoryResponsesFrom(list), nil
}
