package dto

import (
	"time"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// CreateItemRequest payload para crear un item. Slug vacío => se deriva del nombre.
type CreateItemRequest struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	EAN             *string                 `json:"ean"`
	Category        *string                 `json:"category"`
	Nutriments      []entity.NutrimentValue `json:"nutriments"`
	Unit            *string                 `json:"unit"`
	Conversions     []entity.UnitConversion `json:"conversions"`
	DefaultLocation *string                 `json:"defaultLocation"`
	Tags            []string                `json:"tags"`
	TargetStock     int                     `json:"targetStock"`
	Slug            string                  `json:"slug"`
	Thumbnail       *string                 `json:"thumbnail"`
	Images          []string                `json:"images"`
	Group           *string                 `json:"group"`
}

// UpdateItemRequest actualización parcial: campos nil/ausentes no cambian.
// Identidad y campos de auditoría no son actualizables.
type UpdateItemRequest struct {
	Name            *string                 `json:"name"`
	Description     *string                 `json:"description"`
	EAN             *string                 `json:"ean"`
	Category        *string                 `json:"category"`
	Nutriments      []entity.NutrimentValue `json:"nutriments"`
	Unit            *string                 `json:"unit"`
	Conversions     []entity.UnitConversion `json:"conversions"`
	DefaultLocation *string                 `json:"defaultLocation"`
	Tags            []string                `json:"tags"`
	TargetStock     *int                    `json:"targetStock"`
	Slug            *string                 `json:"slug"`
	Thumbnail       *string                 `json:"thumbnail"`
	Images          []string                `json:"images"`
	Group           *string                 `json:"group"`
}

// ItemResponse objeto plano con referencias como ids crudos. Stock es el
// número denormalizado de entradas no consumidas.
type ItemResponse struct {
	ID              string                  `json:"id"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	CreatedBy       *string                 `json:"createdBy"`
	UpdatedBy       *string                 `json:"updatedBy"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	EAN             *string                 `json:"ean"`
	Category        *string                 `json:"category"`
	Nutriments      []entity.NutrimentValue `json:"nutriments"`
	Unit            *string                 `json:"unit"`
	Conversions     []entity.UnitConversion `json:"conversions"`
	DefaultLocation *string                 `json:"defaultLocation"`
	Tags            []string                `json:"tags"`
	TargetStock     int                     `json:"targetStock"`
	Slug            string                  `json:"slug"`
	Thumbnail       *string                 `json:"thumbnail"`
	Images          []string                `json:"images"`
	Group           *string                 `json:"group"`
	Stock           int                     `json:"stock"`
}

// ItemResponseFrom mapea la entidad a su respuesta con el conteo de stock activo.
func ItemResponseFrom(i *entity.Item, stock int) ItemResponse {
	nutriments := i.Nutriments
	if nutriments == nil {
		nutriments = []entity.NutrimentValue{}
	}
	tags := i.Tags
	if tags == nil {
		tags = []string{}
	}
	return ItemResponse{
		ID:              i.ID,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
		CreatedBy:       i.CreatedBy,
		UpdatedBy:       i.UpdatedBy,
		Name:            i.Name,
		Description:     i.Description,
		EAN:             i.EAN,
		Category:        i.Category,
		Nutriments:      nutriments,
		Unit:            i.Unit,
		Conversions:     i.Conversions,
		DefaultLocation: i.DefaultLocation,
		Tags:            tags,
		TargetStock:     i.TargetStock,
		Slug:            i.Slug,
		Thumbnail:       i.Thumbnail,
		Images:          i.Images,
		Group:           i.Group,
		Stock:           stock,
	}
}
