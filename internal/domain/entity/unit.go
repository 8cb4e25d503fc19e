package entity

// Unit unidad de medida de un item (g, ml, pieza...). Symbol es único.
type Unit struct {
	ID     string
	Symbol string
	Name   string
}
