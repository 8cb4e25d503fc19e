package entity

import (
	"encoding/json"
	"time"
)

// StorageLocation lugar físico de almacenamiento. Parent forma un árbol; el
// use case valida que una reasignación de padre no cree ciclos.
type StorageLocation struct {
	ID        string
	Name      string
	Parent    *string
	Info      json.RawMessage // documento libre (temperatura, notas...)
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
