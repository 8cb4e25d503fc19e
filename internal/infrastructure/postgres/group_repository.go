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

var _ repository.GroupRepository = (*GroupRepo)(nil)

const groupColumns = `id, name, description, category, target_stock, default_location, created_by, updated_by, created_at, updated_at`

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Create persiste un grupo (nombre único).
func (r *GroupRepo) Create(ctx context.Context, g *entity.Group) error {
	query := `INSERT INTO groups (` + groupColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.Name, g.Description, g.Category, g.TargetStock, g.DefaultLocation,
		g.CreatedBy, g.UpdatedBy, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID. Devuelve (nil, nil) si no existe.
func (r *GroupRepo) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var g entity.Group
	err := r.q.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id).Scan(
		&g.ID, &g.Name, &g.Description, &g.Category, &g.TargetStock, &g.DefaultLocation,
		&g.CreatedBy, &g.UpdatedBy, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// Update actualiza un grupo existente.
func (r *GroupRepo) Update(ctx context.Context, g *entity.Group) error {
	query := `
		UPDATE groups SET name = $2, description = $3, category = $4, target_stock = $5,
			default_location = $6, updated_by = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.Name, g.Description, g.Category, g.TargetStock, g.DefaultLocation, g.UpdatedBy, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// Delete elimina un grupo por ID.
func (r *GroupRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// List lista todos los grupos ordenados por nombre.
func (r *GroupRepo) List(ctx context.Context) ([]*entity.Group, error) {
	rows, err := r.q.Query(ctx, `SELECT `+groupColumns+` FROM groups ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return scanGroups(rows)
}

// ListWithTarget lista los grupos con objetivo de stock (targetStock >= 1).
func (r *GroupRepo) ListWithTarget(ctx context.Context) ([]*entity.Group, error) {
	rows, err := r.q.Query(ctx, `SELECT `+groupColumns+` FROM groups WHERE target_stock >= 1 ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list groups with target: %w", err)
	}
	return scanGroups(rows)
}

// ListRecent lista los grupos modificados más recientemente.
func (r *GroupRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Group, error) {
	rows, err := r.q.Query(ctx, `SELECT `+groupColumns+` FROM groups ORDER BY updated_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent groups: %w", err)
	}
	return scanGroups(rows)
}

// ClearDefaultLocation anula la ubicación por defecto en los grupos que la referencian.
func (r *GroupRepo) ClearDefaultLocation(ctx context.Context, locationID string, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE groups SET default_location = NULL, updated_by = $2, updated_at = now() WHERE default_location = $1`,
		locationID, updatedBy)
	if err != nil {
		return fmt.Errorf("clear group default location: %w", err)
	}
	return nil
}

func scanGroups(rows pgx.Rows) ([]*entity.Group, error) {
	defer rows.Close()
	var list []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Category, &g.TargetStock, &g.DefaultLocation,
			&g.CreatedBy, &g.UpdatedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
