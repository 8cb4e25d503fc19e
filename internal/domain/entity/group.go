package entity

import "time"

// Group reúne items intercambiables (p.ej. distintas marcas de pasta) y lleva
// su propio objetivo de stock agregado.
type Group struct {
	ID              string
	Name            string
	Description     string
	Category        *string
	TargetStock     int // mínimo deseado sumando el stock activo de todos los items del grupo
	DefaultLocation *string
	CreatedBy       *string
	UpdatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
