package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

var _ repository.StorageLocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, name, parent, info, created_by, updated_by, created_at, updated_at`

// LocationRepo implementación del puerto StorageLocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación (nombre único).
func (r *LocationRepo) Create(ctx context.Context, l *entity.StorageLocation) error {
	query := `INSERT INTO storage_locations (` + locationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	info := l.Info
	if len(info) == 0 {
		info = []byte(`{}`)
	}
	_, err := r.q.Exec(ctx, query,
		l.ID, l.Name, l.Parent, info, l.CreatedBy, l.UpdatedBy, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.StorageLocation, error) {
	var l entity.StorageLocation
	err := r.q.QueryRow(ctx, `SELECT `+locationColumns+` FROM storage_locations WHERE id = $1`, id).Scan(
		&l.ID, &l.Name, &l.Parent, &l.Info, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	return &l, nil
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(ctx context.Context, l *entity.StorageLocation) error {
	query := `UPDATE storage_locations SET name = $2, parent = $3, info = $4, updated_by = $5, updated_at = $6 WHERE id = $1`
	info := l.Info
	if len(info) == 0 {
		info = []byte(`{}`)
	}
	_, err := r.q.Exec(ctx, query, l.ID, l.Name, l.Parent, info, l.UpdatedBy, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update storage location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM storage_locations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete storage location: %w", err)
	}
	return nil
}

// List lista todas las ubicaciones ordenadas por nombre.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.StorageLocation, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM storage_locations ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	return scanLocations(rows)
}

// ListRecent lista las ubicaciones modificadas más recientemente.
func (r *LocationRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StorageLocation, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+locationColumns+` FROM storage_locations ORDER BY updated_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent storage locations: %w", err)
	}
	return scanLocations(rows)
}

// ClearParent desengancha los hijos directos de una ubicación (parent a NULL).
func (r *LocationRepo) ClearParent(ctx context.Context, parentID string) error {
	_, err := r.q.Exec(ctx, `UPDATE storage_locations SET parent = NULL WHERE parent = $1`, parentID)
	if err != nil {
		return fmt.Errorf("clear location parent: %w", err)
	}
	return nil
}

func scanLocations(rows pgx.Rows) ([]*entity.StorageLocation, error) {
	defer rows.Close()
	var list []*entity.StorageLocation
	for rows.Next() {
		var l entity.StorageLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.Parent, &l.Info, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
