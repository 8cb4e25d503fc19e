package entity

import "time"

// Tipos de evento de historial.
const (
	HistoryAdded    = "added"
	HistoryOpened   = "opened"
	HistoryConsumed = "consumed"
	HistoryEdited   = "edited" // presente en el esquema por compatibilidad; nunca se emite
)

// HistoryEntry es el registro inmutable de un cambio de estado sobre una
// StockEntry. Solo se borra al revertir opened/consumed o al eliminar la
// entrada/el item. Invariante: a lo sumo un evento "opened" y uno "consumed"
// por entrada en todo momento.
type HistoryEntry struct {
	ID    string
	Date  time.Time
	Type  string
	Entry string // StockEntry
	Item  string // referencia directa al Item para consultas por item
	User  string // usuario actuante, obligatorio
}
