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
	"github.com/jhoicas/hamster-api/pkg/slug"
)

// ItemUseCase casos de uso CRUD para items. El campo stock de las respuestas
// es derivado (entradas no consumidas), nunca se escribe directamente.
type ItemUseCase struct {
	repo    repository.ItemRepository
	entries repository.StockEntryRepository
	cascade CascadeRunner
	log     *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	entries repository.StockEntryRepository,
	cascade CascadeRunner,
	log *logger.Logger,
) *ItemUseCase {
	return &ItemUseCase{repo: repo, entries: entries, cascade: cascade, log: log}
}

// List lista todos los items con su conteo de stock activo.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := uc.entries.ActiveCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.ItemResponseFrom(i, counts[i.ID]))
	}
	return out, nil
}

// GetBySlug obtiene un item por su slug único.
func (uc *ItemUseCase) GetBySlug(ctx context.Context, s string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.entries.CountActive(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ItemResponseFrom(item, stock)
	return &resp, nil
}

// Create crea un item. Slug vacío se deriva del nombre; el slug resultante
// debe ser URL-safe y único (ErrDuplicate llega desde la persistencia).
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest, userID string) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}
	if s == "" || !slug.Valid(s) {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !validConversions(in.Conversions) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		EAN:             in.EAN,
		Category:        in.Category,
		Nutriments:      in.Nutriments,
		Unit:            in.Unit,
		Conversions:     in.Conversions,
		DefaultLocation: in.DefaultLocation,
		Tags:            in.Tags,
		TargetStock:     in.TargetStock,
		Slug:            s,
		Thumbnail:       in.Thumbnail,
		Images:          in.Images,
		Group:           in.Group,
		CreatedBy:       &userID,
		UpdatedBy:       &userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.log.Info().Str("item", item.ID).Str("slug", item.Slug).Msg("item creado")
	resp := dto.ItemResponseFrom(item, 0)
	return &resp, nil
}

// Update actualización parcial. Identidad y auditoría de creación no cambian.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest, userID string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.EAN != nil {
		item.EAN = in.EAN
	}
	if in.Category != nil {
		item.Category = in.Category
	}
	if in.Nutriments != nil {
		item.Nutriments = in.Nutriments
	}
	if in.Unit != nil {
		item.Unit = in.Unit
	}
	if in.Conversions != nil {
		if !validConversions(in.Conversions) {
			return nil, domain.ErrInvalidInput
		}
		item.Conversions = in.Conversions
	}
	if in.DefaultLocation != nil {
		item.DefaultLocation = in.DefaultLocation
	}
	if in.Tags != nil {
		item.Tags = in.Tags
	}
	if in.TargetStock != nil {
		if *in.TargetStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.TargetStock = *in.TargetStock
	}
	if in.Slug != nil {
		if *in.Slug == "" || !slug.Valid(*in.Slug) {
			return nil, domain.ErrInvalidInput
		}
		item.Slug = *in.Slug
	}
	if in.Thumbnail != nil {
		item.Thumbnail = in.Thumbnail
	}
	if in.Images != nil {
		item.Images = in.Images
	}
	if in.Group != nil {
		item.Group = in.Group
	}
	item.UpdatedBy = &userID
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	stock, err := uc.entries.CountActive(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("item", item.ID).Msg("item actualizado")
	resp := dto.ItemResponseFrom(item, stock)
	return &resp, nil
}

// Delete borra el item y arrastra, en la misma transacción, sus entradas de
// stock y todos los eventos de historial que referencian al item (filtro
// directo por item id, no a través de las entradas supervivientes).
func (uc *ItemUseCase) Delete(ctx context.Context, id string) (*dto.ItemResponse, error) {
	var deleted entity.Item
	err := uc.cascade.RunItemDelete(ctx, func(
		items repository.ItemRepository,
		entries repository.StockEntryRepository,
		history repository.HistoryRepository,
	) error {
		item, err := items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := items.Delete(ctx, id); err != nil {
			return err
		}
		if err := entries.DeleteByItem(ctx, id); err != nil {
			return err
		}
		if err := history.DeleteByItem(ctx, id); err != nil {
			return err
		}
		deleted = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("item", deleted.ID).Msg("item eliminado con stock e historial")
	resp := dto.ItemResponseFrom(&deleted, 0)
	return &resp, nil
}

func validConversions(list []entity.UnitConversion) bool {
	for _, c := range list {
		if c.FromAmount < 0 || c.ToAmount < 0 || c.ToUnit == "" {
			return false
		}
	}
	return true
}
