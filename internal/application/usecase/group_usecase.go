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

// GroupUseCase CRUD de grupos de items intercambiables.
type GroupUseCase struct {
	repo  repository.GroupRepository
	items repository.ItemRepository
	log   *logger.Logger
}

// NewGroupUseCase construye el caso de uso.
func NewGroupUseCase(repo repository.GroupRepository, items repository.ItemRepository, log *logger.Logger) *GroupUseCase {
	return &GroupUseCase{repo: repo, items: items, log: log}
}

// List lista todos los grupos.
func (uc *GroupUseCase) List(ctx context.Context) ([]dto.GroupResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.GroupResponseFrom(g))
	}
	return out, nil
}

// GetByID obtiene un grupo por id.
func (uc *GroupUseCase) GetByID(ctx context.Context, id string) (*dto.GroupResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.GroupResponseFrom(g)
	return &resp, nil
}

// Create crea un grupo (nombre único, targetStock >= 0).
func (uc *GroupUseCase) Create(ctx context.Context, in dto.CreateGroupRequest, userID string) (*dto.GroupResponse, error) {
	if in.Name == "" || in.TargetStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	g := &entity.Group{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		TargetStock:     in.TargetStock,
		DefaultLocation: in.DefaultLocation,
		CreatedBy:       &userID,
		UpdatedBy:       &userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	resp := dto.GroupResponseFrom(g)
	return &resp, nil
}

// Update actualización parcial de un grupo.
func (uc *GroupUseCase) Update(ctx context.Context, id string, in dto.UpdateGroupRequest, userID string) (*dto.GroupResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		g.Name = *in.Name
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.Category != nil {
		g.Category = in.Category
	}
	if in.TargetStock != nil {
		if *in.TargetStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		g.TargetStock = *in.TargetStock
	}
	if in.DefaultLocation != nil {
		g.DefaultLocation = in.DefaultLocation
	}
	g.UpdatedBy = &userID
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	resp := dto.GroupResponseFrom(g)
	return &resp, nil
}

// Delete borra el grupo y anula item.group en los items afectados (best-effort).
func (uc *GroupUseCase) Delete(ctx context.Context, id string, userID string) (*dto.GroupResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.items.ClearGroup(ctx, id, userID); err != nil {
		uc.log.Warn().Err(err).Str("group", id).Msg("cascada de grupo incompleta: items con referencia colgante")
	}
	resp := dto.GroupResponseFrom(g)
	return &resp, nil
}
