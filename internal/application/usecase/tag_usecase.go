package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
	"github.com/jhoicas/hamster-api/pkg/logger"
)

var htmlColorRe = regexp.MustCompile(`^#([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`)

// TagUseCase CRUD de etiquetas. Al borrar, el id de la etiqueta se retira de
// item.tags (best-effort; el original dejaba las referencias colgando).
type TagUseCase struct {
	repo  repository.TagRepository
	items repository.ItemRepository
	log   *logger.Logger
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(repo repository.TagRepository, items repository.ItemRepository, log *logger.Logger) *TagUseCase {
	return &TagUseCase{repo: repo, items: items, log: log}
}

// List lista todas las etiquetas.
func (uc *TagUseCase) List(ctx context.Context) ([]dto.TagResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TagResponseFrom(t))
	}
	return out, nil
}

// Create crea una etiqueta (label único, color HTML válido si presente).
func (uc *TagUseCase) Create(ctx context.Context, in dto.CreateTagRequest, userID string) (*dto.TagResponse, error) {
	if in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Color != nil && !htmlColorRe.MatchString(*in.Color) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Tag{
		ID:          uuid.New().String(),
		Label:       in.Label,
		Description: in.Description,
		Color:       in.Color,
		CreatedBy:   &userID,
		UpdatedBy:   &userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := dto.TagResponseFrom(t)
	return &resp, nil
}

// Update actualización parcial de una etiqueta.
func (uc *TagUseCase) Update(ctx context.Context, id string, in dto.UpdateTagRequest, userID string) (*dto.TagResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Label != nil {
		if *in.Label == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Label = *in.Label
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Color != nil {
		if !htmlColorRe.MatchString(*in.Color) {
			return nil, domain.ErrInvalidInput
		}
		t.Color = in.Color
	}
	t.UpdatedBy = &userID
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := dto.TagResponseFrom(t)
	return &resp, nil
}

// Delete borra la etiqueta y la retira de los items que la llevaban.
func (uc *TagUseCase) Delete(ctx context.Context, id string, userID string) (*dto.TagResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.items.RemoveTag(ctx, id, userID); err != nil {
		uc.log.Warn().Err(err).Str("tag", id).Msg("cascada de etiqueta incompleta: items con referencia colgante")
	}
	resp := dto.TagResponseFrom(t)
	return &resp, nil
}
