package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// UnitHandler maneja las peticiones HTTP para Unit (protegido).
type UnitHandler struct {
	uc *usecase.UnitUseCase
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *usecase.UnitUseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// List godoc
// @Summary      Listar unidades de medida
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units [get]
func (h *UnitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear unidad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "symbol, name"
// @Success      201   {object}  dto.UnitResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UpdateUnitRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id} [put]
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateUnitRequest
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
// @Summary      Borrar unidad (anula las referencias en items)
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.UnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id} [delete]
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.Delete(c.Context(), id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
