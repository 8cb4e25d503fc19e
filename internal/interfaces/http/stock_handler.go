package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/stock"
)

// StockHandler maneja el ciclo de vida de las entradas de stock (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListByItem godoc
// @Summary      Listar entradas de stock de un item
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID del item"
// @Param        onlyActive  query  bool    false  "Solo entradas no consumidas"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/items/{id}/stock [get]
func (h *StockHandler) ListByItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return missingID(c)
	}
	onlyActive := c.QueryBool("onlyActive", false)
	out, err := h.uc.ListByItem(c.Context(), itemID, onlyActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear entrada de stock (emite el evento "added")
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.CreateStockEntryRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return missingID(c)
	}
	var in dto.CreateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), itemID, in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar entrada de stock (los flags espejan el historial)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.UpdateStockEntryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar entrada de stock con su historial
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
