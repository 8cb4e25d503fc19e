package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// ── Category ──────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parent      *string `json:"parent"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Parent      *string `json:"parent"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Parent      *string   `json:"parent"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   *string   `json:"createdBy"`
	UpdatedBy   *string   `json:"updatedBy"`
}

func CategoryResponseFrom(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Parent:      c.Parent,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
	}
}

// ── Group ─────────────────────────────────────────────────────────────────────

type CreateGroupRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        *string `json:"category"`
	TargetStock     int     `json:"targetStock"`
	DefaultLocation *string `json:"defaultLocation"`
}

type UpdateGroupRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	TargetStock     *int    `json:"targetStock"`
	DefaultLocation *string `json:"defaultLocation"`
}

type GroupResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	CreatedBy       *string   `json:"createdBy"`
	UpdatedBy       *string   `json:"updatedBy"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        *string   `json:"category"`
	TargetStock     int       `json:"targetStock"`
	DefaultLocation *string   `json:"defaultLocation"`
}

func GroupResponseFrom(g *entity.Group) GroupResponse {
	return GroupResponse{
		ID:              g.ID,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		CreatedBy:       g.CreatedBy,
		UpdatedBy:       g.UpdatedBy,
		Name:            g.Name,
		Description:     g.Description,
		Category:        g.Category,
		TargetStock:     g.TargetStock,
		DefaultLocation: g.DefaultLocation,
	}
}

// ── Tag ───────────────────────────────────────────────────────────────────────

type CreateTagRequest struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Color       *string `json:"color"`
}

type UpdateTagRequest struct {
	Label       *string `json:"label"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type TagResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   *string   `json:"createdBy"`
	UpdatedBy   *string   `json:"updatedBy"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Color       *string   `json:"color"`
}

func TagResponseFrom(t *entity.Tag) TagResponse {
	return TagResponse{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CreatedBy:   t.CreatedBy,
		UpdatedBy:   t.UpdatedBy,
		Label:       t.Label,
		Description: t.Description,
		Color:       t.Color,
	}
}

// ── Unit ──────────────────────────────────────────────────────────────────────

type CreateUnitRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type UpdateUnitRequest struct {
	Symbol *string `json:"symbol"`
	Name   *string `json:"name"`
}

type UnitResponse struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func UnitResponseFrom(u *entity.Unit) UnitResponse {
	return UnitResponse{ID: u.ID, Symbol: u.Symbol, Name: u.Name}
}

// ── StorageLocation ───────────────────────────────────────────────────────────

type CreateLocationRequest struct {
	Name   string          `json:"name"`
	Parent *string         `json:"parent"`
	Info   json.RawMessage `json:"info"`
}

type UpdateLocationRequest struct {
	Name   *string         `json:"name"`
	Parent *string         `json:"parent"`
	Info   json.RawMessage `json:"info"`
}

type LocationResponse struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	CreatedBy *string         `json:"createdBy"`
	UpdatedBy *string         `json:"updatedBy"`
	Name      string          `json:"name"`
	Info      json.RawMessage `json:"info"`
	Parent    *string         `json:"parent"`
}

func LocationResponseFrom(l *entity.StorageLocation) LocationResponse {
	info := l.Info
	if len(info) == 0 {
		info = json.RawMessage(`{}`)
	}
	return LocationResponse{
		ID:        l.ID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		CreatedBy: l.CreatedBy,
		UpdatedBy: l.UpdatedBy,
		Name:      l.Name,
		Info:      info,
		Parent:    l.Parent,
	}
}

// ── NutrimentType ─────────────────────────────────────────────────────────────

type NutrimentTypeResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func NutrimentTypeResponseFrom(n *entity.NutrimentType) NutrimentTypeResponse {
	return NutrimentTypeResponse{Key: n.Key, Name: n.Name, Unit: n.Unit}
}
