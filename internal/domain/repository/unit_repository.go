package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(ctx context.Context, u *entity.Unit) error
	GetByID(ctx context.Context, id string) (*entity.Unit, error)
	Update(ctx context.Context, u *entity.Unit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Unit, error)
}
