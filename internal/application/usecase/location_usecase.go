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
)

// LocationUseCase CRUD de ubicaciones de almacenamiento (árbol vía parent).
// Cada reasignación de padre valida que no se cree un ciclo caminando hasta
// la raíz con un conjunto de visitados (acotado incluso con datos corruptos).
type LocationUseCase struct {
	repo    repository.StorageLocationRepository
	cascade CascadeRunner
	log     *logger.Logger
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.StorageLocationRepository, cascade CascadeRunner, log *logger.Logger) *LocationUseCase {
	return &LocationUseCase{repo: repo, cascade: cascade, log: log}
}

// List lista todas las ubicaciones.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LocationResponseFrom(l))
	}
	return out, nil
}

// Create crea una ubicación (nombre único).
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest, userID string) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := &entity.StorageLocation{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Parent:    in.Parent,
		Info:      in.Info,
		CreatedBy: &userID,
		UpdatedBy: &userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	resp := dto.LocationResponseFrom(l)
	return &resp, nil
}

// Update actualización parcial; una reasignación de padre pasa por el chequeo
// de ciclos (ErrCyclicParent).
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest, userID string) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		l.Name = *in.Name
	}
	if in.Parent != nil {
		if *in.Parent != "" {
			if err := uc.checkNoCycle(ctx, id, *in.Parent); err != nil {
				return nil, err
			}
			l.Parent = in.Parent
		} else {
			l.Parent = nil
		}
	}
	if in.Info != nil {
		l.Info = in.Info
	}
	l.UpdatedBy = &userID
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	resp := dto.LocationResponseFrom(l)
	return &resp, nil
}

// Delete borra la ubicación y, en una transacción, anula las referencias en
// items (defaultLocation), grupos (defaultLocation), entradas de stock
// (location) y en sus hijas directas (parent). Solo un nivel: las
// descendientes sobreviven con el padre anulado.
func (uc *LocationUseCase) Delete(ctx context.Context, id string, userID string) (*dto.LocationResponse, error) {
	var deleted entity.StorageLocation
	err := uc.cascade.RunLocationDelete(ctx, func(
		locations repository.StorageLocationRepository,
		items repository.ItemRepository,
		groups repository.GroupRepository,
		entries repository.StockEntryRepository,
	) error {
		l, err := locations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		if err := locations.Delete(ctx, id); err != nil {
			return err
		}
		if err := items.ClearDefaultLocation(ctx, id, userID); err != nil {
			return err
		}
		if err := groups.ClearDefaultLocation(ctx, id, userID); err != nil {
			return err
		}
		if err := entries.ClearLocation(ctx, id); err != nil {
			return err
		}
		if err := locations.ClearParent(ctx, id); err != nil {
			return err
		}
		deleted = *l
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("location", deleted.ID).Msg("ubicación eliminada con cascada de referencias")
	resp := dto.LocationResponseFrom(&deleted)
	return &resp, nil
}

// checkNoCycle camina de newParent hacia la raíz; si aparece id o un nodo ya
// visitado, la reasignación crearía (o atravesaría) un ciclo.
func (uc *LocationUseCase) checkNoCycle(ctx context.Context, id, newParent string) error {
	visited := map[string]bool{id: true}
	cur := newParent
	for cur != "" {
		if visited[cur] {
			return domain.ErrCyclicParent
		}
		visited[cur] = true
		node, err := uc.repo.GetByID(ctx, cur)
		if err != nil {
			return err
		}
		if node == nil || node.Parent == nil {
			return nil // llegamos a una raíz
		}
		cur = *node.Parent
	}
	return nil
}
