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

var _ repository.TagRepository = (*TagRepo)(nil)

const tagColumns = `id, label, description, color, created_by, updated_by, created_at, updated_at`

// TagRepo implementación del puerto TagRepository sobre PostgreSQL.
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persiste una etiqueta (label único).
func (r *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	query := `INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Label, t.Description, t.Color, t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID obtiene una etiqueta por ID. Devuelve (nil, nil) si no existe.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	var t entity.Tag
	err := r.q.QueryRow(ctx, `SELECT `+tagColumns+` FROM tags WHERE id = $1`, id).Scan(
		&t.ID, &t.Label, &t.Description, &t.Color, &t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

// Update actualiza una etiqueta existente.
func (r *TagRepo) Update(ctx context.Context, t *entity.Tag) error {
	query := `UPDATE tags SET label = $2, description = $3, color = $4, updated_by = $5, updated_at = $6 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, t.ID, t.Label, t.Description, t.Color, t.UpdatedBy, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// Delete elimina una etiqueta por ID.
func (r *TagRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// List lista todas las etiquetas ordenadas por label.
func (r *TagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.q.Query(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY label, id`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Label, &t.Description, &t.Color, &t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
