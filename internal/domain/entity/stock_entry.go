package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry es una instancia física y rastreable de un Item (una lata, una
// botella). No lleva timestamps de auditoría propios: la procedencia vive en
// HistoryEntry.
type StockEntry struct {
	ID         string
	Item       string // item propietario, obligatorio
	BestBefore time.Time
	Location   *string
	Price      *decimal.Decimal // >= 0 cuando presente
	Store      *string
	Opened     bool
	Consumed   bool
}
