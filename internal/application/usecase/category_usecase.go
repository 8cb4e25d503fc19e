package usecase

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

// CategoryUseCase CRUD de categorías. Al borrar, las referencias en items se
// anulan como escritura secundaria best-effort: el borrado primario ya está
// confirmado y un fallo aquí solo deja limpieza pendiente, que se registra.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	items repository.ItemRepository
	log   *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, items repository.ItemRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, items: items, log: log}
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponseFrom(c))
	}
	return out, nil
}

// Create crea una categoría (nombre único).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, userID string) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Parent:      in.Parent,
		CreatedBy:   &userID,
		UpdatedBy:   &userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.CategoryResponseFrom(c)
	return &resp, nil
}

// Update actualización parcial de una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest, userID string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Parent != nil {
		c.Parent = in.Parent
	}
	c.UpdatedBy = &userID
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.CategoryResponseFrom(c)
	return &resp, nil
}

// Delete borra la categoría y anula item.category en los items afectados.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string, userID string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.items.ClearCategory(ctx, id, userID); err != nil {
		uc.log.Warn().Err(err).Str("category", id).Msg("cascada de categoría incompleta: items con referencia colgante")
	}
	resp := dto.CategoryResponseFrom(c)
	return &resp, nil
}
