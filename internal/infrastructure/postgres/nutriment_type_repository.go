package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

var _ repository.NutrimentTypeRepository = (*NutrimentTypeRepo)(nil)

// NutrimentTypeRepo lectura del catálogo de nutrimentos (sembrado en la migración).
type NutrimentTypeRepo struct {
	q Querier
}

// NewNutrimentTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNutrimentTypeRepository(q Querier) *NutrimentTypeRepo {
	return &NutrimentTypeRepo{q: q}
}

// List lista el catálogo completo ordenado por nombre.
func (r *NutrimentTypeRepo) List(ctx context.Context) ([]*entity.NutrimentType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, key, name, unit FROM nutriment_types ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list nutriment types: %w", err)
	}
	defer rows.Close()
	var list []*entity.NutrimentType
	for rows.Next() {
		var n entity.NutrimentType
		if err := rows.Scan(&n.ID, &n.Key, &n.Name, &n.Unit); err != nil {
			return nil, fmt.Errorf("scan nutriment type: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
