package entity

import "time"

// Category agrupa items por tipo de producto. Parent permite anidar categorías.
type Category struct {
	ID          string
	Name        string
	Description string
	Parent      *string
	CreatedBy   *string
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
