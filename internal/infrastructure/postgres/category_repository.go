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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, parent, created_by, updated_by, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría (nombre único).
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `INSERT INTO categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.Parent, c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Parent, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `UPDATE categories SET name = $2, description = $3, parent = $4, updated_by = $5, updated_at = $6 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.Parent, c.UpdatedBy, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return scanCategories(rows)
}

// ListRecent lista las categorías modificadas más recientemente.
func (r *CategoryRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY updated_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent categories: %w", err)
	}
	return scanCategories(rows)
}

func scanCategories(rows pgx.Rows) ([]*entity.Category, error) {
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Parent, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
