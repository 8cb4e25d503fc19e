package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los métodos Clear*/RemoveTag son las escrituras secundarias del
// coordinador de integridad referencial: anulan referencias colgantes
// cuando se borra la entidad padre.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Item, error)
	Count(ctx context.Context) (int, error)

	// ListWithTarget lista items con targetStock >= 1 (candidatos a "bajo objetivo").
	ListWithTarget(ctx context.Context) ([]*entity.Item, error)
	// ListRecent lista los items modificados más recientemente (updatedAt desc, id como desempate).
	ListRecent(ctx context.Context, limit int) ([]*entity.Item, error)

	ClearCategory(ctx context.Context, categoryID string, updatedBy string) error
	ClearGroup(ctx context.Context, groupID string, updatedBy string) error
	ClearUnit(ctx context.Context, unitID string, updatedBy string) error
	ClearDefaultLocation(ctx context.Context, locationID string, updatedBy string) error
	RemoveTag(ctx context.Context, tagID string, updatedBy string) error
}
