package usecase

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// NutrimentTypeUseCase catálogo de tipos de nutrimento (solo lectura).
type NutrimentTypeUseCase struct {
	repo repository.NutrimentTypeRepository
}

// NewNutrimentTypeUseCase construye el caso de uso.
func NewNutrimentTypeUseCase(repo repository.NutrimentTypeRepository) *NutrimentTypeUseCase {
	return &NutrimentTypeUseCase{repo: repo}
}

// List lista el catálogo completo.
func (uc *NutrimentTypeUseCase) List(ctx context.Context) ([]dto.NutrimentTypeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NutrimentTypeResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NutrimentTypeResponseFrom(n))
	}
	return out, nil
}
