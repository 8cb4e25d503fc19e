package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// GroupRepository define el puerto de persistencia para Group.
type GroupRepository interface {
	Create(ctx context.Context, g *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	Update(ctx context.Context, g *entity.Group) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Group, error)
	ListWithTarget(ctx context.Context) ([]*entity.Group, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Group, error)

	ClearDefaultLocation(ctx context.Context, locationID string, updatedBy string) error
}
