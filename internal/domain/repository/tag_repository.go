package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// TagRepository define el puerto de persistencia para Tag.
type TagRepository interface {
	Create(ctx context.Context, t *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	Update(ctx context.Context, t *entity.Tag) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Tag, error)
}
