package entity

import "time"

// Item representa un producto catalogado de la despensa (no una unidad física;
// las unidades físicas son StockEntry). Nutriments y Conversions son documentos
// embebidos cuyo ciclo de vida está ligado al item (columna jsonb).
type Item struct {
	ID              string
	Name            string
	Description     string
	EAN             *string // código de barras externo, opcional
	Category        *string
	Nutriments      []NutrimentValue
	Unit            *string
	Conversions     []UnitConversion
	DefaultLocation *string
	Tags            []string
	TargetStock     int // mínimo deseado; 0 = sin objetivo
	Slug            string
	Thumbnail       *string
	Images          []string
	Group           *string
	CreatedBy       *string
	UpdatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NutrimentValue cantidad de un nutrimento por clave de NutrimentType.
type NutrimentValue struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// UnitConversion conversión de cantidades entre unidades (fromAmount de la
// unidad del item equivale a toAmount de toUnit). Montos siempre >= 0.
type UnitConversion struct {
	FromAmount float64 `json:"fromAmount"`
	ToUnit     string  `json:"toUnit"`
	ToAmount   float64 `json:"toAmount"`
}
