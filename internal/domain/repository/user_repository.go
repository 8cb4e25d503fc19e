package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
}
