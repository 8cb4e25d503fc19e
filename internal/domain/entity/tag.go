package entity

import "time"

// Tag etiqueta libre aplicable a items. Color es un código HTML (#rgb o #rrggbb).
type Tag struct {
	ID          string
	Label       string
	Description string
	Color       *string
	CreatedBy   *string
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
