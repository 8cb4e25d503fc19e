package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// StorageLocationRepository define el puerto de persistencia para StorageLocation.
type StorageLocationRepository interface {
	Create(ctx context.Context, l *entity.StorageLocation) error
	GetByID(ctx context.Context, id string) (*entity.StorageLocation, error)
	Update(ctx context.Context, l *entity.StorageLocation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.StorageLocation, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.StorageLocation, error)

	// ClearParent desengancha los hijos directos de una ubicación borrada
	// (solo un nivel: los descendientes quedan intactos, con parent nulo).
	ClearParent(ctx context.Context, parentID string) error
}
