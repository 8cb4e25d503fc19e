package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
	"github.com/jhoicas/hamster-api/pkg/logger"
)

// UnitUseCase CRUD de unidades de medida.
type UnitUseCase struct {
	repo  repository.UnitRepository
	items repository.ItemRepository
	log   *logger.Logger
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository, items repository.ItemRepository, log *logger.Logger) *UnitUseCase {
	return &UnitUseCase{repo: repo, items: items, log: log}
}

// List lista todas las unidades.
func (uc *UnitUseCase) List(ctx context.Context) ([]dto.UnitResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UnitResponseFrom(u))
	}
	return out, nil
}

// Create crea una unidad (symbol único).
func (uc *UnitUseCase) Create(ctx context.Context, in dto.CreateUnitRequest, _ string) (*dto.UnitResponse, error) {
	if in.Symbol == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	u := &entity.Unit{ID: uuid.New().String(), Symbol: in.Symbol, Name: in.Name}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.UnitResponseFrom(u)
	return &resp, nil
}

// Update actualización parcial de una unidad.
func (uc *UnitUseCase) Update(ctx context.Context, id string, in dto.UpdateUnitRequest, _ string) (*dto.UnitResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Symbol != nil {
		if *in.Symbol == "" {
			return nil, domain.ErrInvalidInput
		}
		u.Symbol = *in.Symbol
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		u.Name = *in.Name
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.UnitResponseFrom(u)
	return &resp, nil
}

// Delete borra la unidad y anula item.unit en los items afectados (best-effort).
func (uc *UnitUseCase) Delete(ctx context.Context, id string, userID string) (*dto.UnitResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.items.ClearUnit(ctx, id, userID); err != nil {
		uc.log.Warn().Err(err).Str("unit", id).Msg("cascada de unidad incompleta: items con referencia colgante")
	}
	resp := dto.UnitResponseFrom(u)
	return &resp, nil
}
