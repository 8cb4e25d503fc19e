package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/history"
)

// HistoryHandler consultas de solo lectura sobre el historial (protegido).
type HistoryHandler struct {
	uc *history.UseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *history.UseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// ByItem godoc
// @Summary      Historial de todas las entradas de un item
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {array}  dto.HistoryResponse
// @Router       /api/items/{id}/history [get]
func (h *HistoryHandler) ByItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return missingID(c)
	}
	out, err := h.uc.ByItem(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByEntry godoc
// @Summary      Historial de una entrada de stock
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {array}  dto.HistoryResponse
// @Router       /api/stock/{id}/history [get]
func (h *HistoryHandler) ByEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")
	if entryID == "" {
		return missingID(c)
	}
	out, err := h.uc.ByEntry(c.Context(), entryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
