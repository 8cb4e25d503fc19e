package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// CreateStockEntryRequest payload para crear una entrada de stock.
// El item viene de la ruta, nunca del cuerpo.
type CreateStockEntryRequest struct {
	BestBefore *time.Time       `json:"bestBefore"`
	Location   *string          `json:"location"`
	Price      *decimal.Decimal `json:"price"`
	Store      *string          `json:"store"`
	Opened     bool             `json:"opened"`
	Consumed   bool             `json:"consumed"`
}

// UpdateStockEntryRequest actualización parcial; los flags opened/consumed
// disparan la lógica de transición del historial.
type UpdateStockEntryRequest struct {
	BestBefore *time.Time       `json:"bestBefore"`
	Location   *string          `json:"location"`
	Price      *decimal.Decimal `json:"price"`
	Store      *string          `json:"store"`
	Opened     *bool            `json:"opened"`
	Consumed   *bool            `json:"consumed"`
}

// StockEntryResponse objeto plano de una entrada de stock.
type StockEntryResponse struct {
	ID         string           `json:"id"`
	Item       string           `json:"item"`
	BestBefore time.Time        `json:"bestBefore"`
	Opened     bool             `json:"opened"`
	Consumed   bool             `json:"consumed"`
	Location   *string          `json:"location"`
	Price      *decimal.Decimal `json:"price"`
	Store      *string          `json:"store"`
}

// StockEntryResponseFrom mapea la entidad a su respuesta.
func StockEntryResponseFrom(e *entity.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ID:         e.ID,
		Item:       e.Item,
		BestBefore: e.BestBefore,
		Opened:     e.Opened,
		Consumed:   e.Consumed,
		Location:   e.Location,
		Price:      e.Price,
		Store:      e.Store,
	}
}

// StockEntryResponsesFrom mapea una lista de entradas.
func StockEntryResponsesFrom(list []*entity.StockEntry) []StockEntryResponse {
	out := make([]StockEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, StockEntryResponseFrom(e))
	}
	return out
}
