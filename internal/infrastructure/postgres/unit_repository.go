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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una unidad (symbol único).
func (r *UnitRepo) Create(ctx context.Context, u *entity.Unit) error {
	_, err := r.q.Exec(ctx, `INSERT INTO units (id, symbol, name) VALUES ($1, $2, $3)`, u.ID, u.Symbol, u.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID. Devuelve (nil, nil) si no existe.
func (r *UnitRepo) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(ctx, `SELECT id, symbol, name FROM units WHERE id = $1`, id).Scan(&u.ID, &u.Symbol, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// Update actualiza una unidad existente.
func (r *UnitRepo) Update(ctx context.Context, u *entity.Unit) error {
	_, err := r.q.Exec(ctx, `UPDATE units SET symbol = $2, name = $3 WHERE id = $1`, u.ID, u.Symbol, u.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina una unidad por ID.
func (r *UnitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// List lista todas las unidades ordenadas por symbol.
func (r *UnitRepo) List(ctx context.Context) ([]*entity.Unit, error) {
	rows, err := r.q.Query(ctx, `SELECT id, symbol, name FROM units ORDER BY symbol, id`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Symbol, &u.Name); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
