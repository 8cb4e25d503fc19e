package repository

import (
	"context"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// NutrimentTypeRepository puerto de lectura del catálogo de nutrimentos.
// El catálogo se siembra en la migración; la API solo lo lista.
type NutrimentTypeRepository interface {
	List(ctx context.Context) ([]*entity.NutrimentType, error)
}
