package dto

import (
	"time"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// HistoryResponse evento de historial tal como sale por la API.
type HistoryResponse struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
	Entry string    `json:"entry"`
	Item  string    `json:"item"`
	User  string    `json:"user"`
}

// HistoryResponseFrom mapea la entidad a su respuesta.
func HistoryResponseFrom(h *entity.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:    h.ID,
		Date:  h.Date,
		Type:  h.Type,
		Entry: h.Entry,
		Item:  h.Item,
		User:  h.User,
	}
}

// HistoryResponsesFrom mapea una lista de eventos.
func HistoryResponsesFrom(list []*entity.HistoryEntry) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, HistoryResponseFrom(h))
	}
	return out
}
