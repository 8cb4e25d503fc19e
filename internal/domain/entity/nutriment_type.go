package entity

// NutrimentType tipo de nutrimento referenciable por clave desde
// Item.Nutriments (p.ej. key "energy", unit "kcal"). Key y Name son únicos.
type NutrimentType struct {
	ID   string
	Key  string
	Name string
	Unit string
}
