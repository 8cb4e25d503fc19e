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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description, ean, category, nutriments, unit, conversions,
	default_location, tags, target_stock, slug, thumbnail, images, item_group,
	created_by, updated_by, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item. El slug único se garantiza por constraint.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.EAN, item.Category,
		item.Nutriments, item.Unit, item.Conversions, item.DefaultLocation,
		item.Tags, item.TargetStock, item.Slug, item.Thumbnail, item.Images,
		item.Group, item.CreatedBy, item.UpdatedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	row := r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	return scanItem(row)
}

// GetBySlug obtiene un item por su slug único.
func (r *ItemRepo) GetBySlug(ctx context.Context, slug string) (*entity.Item, error) {
	row := r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE slug = $1`, slug)
	return scanItem(row)
}

// Update actualiza un item existente (ID, created_by y created_at no cambian).
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, ean = $4, category = $5, nutriments = $6,
			unit = $7, conversions = $8, default_location = $9, tags = $10, target_stock = $11,
			slug = $12, thumbnail = $13, images = $14, item_group = $15, updated_by = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.EAN, item.Category, item.Nutriments,
		item.Unit, item.Conversions, item.DefaultLocation, item.Tags, item.TargetStock,
		item.Slug, item.Thumbnail, item.Images, item.Group, item.UpdatedBy, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// List lista todos los items ordenados por nombre.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return scanItems(rows)
}

// Count cuenta todos los items.
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// ListWithTarget lista los items con objetivo de stock (targetStock >= 1).
func (r *ItemRepo) ListWithTarget(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE target_stock >= 1 ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list items with target: %w", err)
	}
	return scanItems(rows)
}

// ListRecent lista los items modificados más recientemente.
func (r *ItemRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY updated_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent items: %w", err)
	}
	return scanItems(rows)
}

// ClearCategory anula la categoría en los items que la referencian.
func (r *ItemRepo) ClearCategory(ctx context.Context, categoryID string, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET category = NULL, updated_by = $2, updated_at = now() WHERE category = $1`,
		categoryID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("clear item category: %w", err)
	}
	return nil
}

// ClearGroup anula el grupo en los items que lo referencian.
func (r *ItemRepo) ClearGroup(ctx context.Context, groupID string, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET item_group = NULL, updated_by = $2, updated_at = now() WHERE item_group = $1`,
		groupID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("clear item group: %w", err)
	}
	return nil
}

// ClearUnit anula la unidad en los items que la referencian.
func (r *ItemRepo) ClearUnit(ctx context.Context, unitID string, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET unit = NULL, updated_by = $2, updated_at = now() WHERE unit = $1`,
		unitID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("clear item unit: %w", err)
	}
	return nil
}

// ClearDefaultLocation anula la ubicación por defecto en los items que la referencian.
func (r *ItemRepo) ClearDefaultLocation(ctx context.Context, locationID string, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET default_location = NULL, updated_by = $2, updated_at = now() WHERE default_location = $1`,
		locationID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("clear item default location: %w", err)
	}
	return nil
}

// RemoveTag retira un tag del arreglo tags de los items que lo llevan.
func (r *ItemRepo) RemoveTag(ctx context.Context, tagID string, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET tags = array_remove(tags, $1), updated_by = $2, updated_at = now() WHERE $1 = ANY(tags)`,
		tagID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("remove item tag: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.Name, &i.Description, &i.EAN, &i.Category, &i.Nutriments,
		&i.Unit, &i.Conversions, &i.DefaultLocation, &i.Tags, &i.TargetStock,
		&i.Slug, &i.Thumbnail, &i.Images, &i.Group,
		&i.CreatedBy, &i.UpdatedBy, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &i, nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Description, &i.EAN, &i.Category, &i.Nutriments,
			&i.Unit, &i.Conversions, &i.DefaultLocation, &i.Tags, &i.TargetStock,
			&i.Slug, &i.Thumbnail, &i.Images, &i.Group,
			&i.CreatedBy, &i.UpdatedBy, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
