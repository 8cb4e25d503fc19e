package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP para StorageLocation (protegido).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "name, parent, info"
// @Success      201   {object}  dto.LocationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
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
// @Summary      Actualizar ubicación (valida ciclos de parent)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ubicación"
// @Param        body  body  dto.UpdateLocationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateLocationRequest
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
// @Summary      Borrar ubicación (anula referencias en items, grupos, stock e hijas)
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
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
