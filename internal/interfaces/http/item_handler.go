package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP para Item (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar items con su stock activo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener item por slug
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        slug  path  string  true  "Slug del item"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{slug} [get]
func (h *ItemHandler) GetBySlug(c *fiber.Ctx) error {
	s := c.Params("slug")
	if s == "" {
		return missingID(c)
	}
	out, err := h.uc.GetBySlug(c.Context(), s)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
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
// @Summary      Actualizar item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateItemRequest
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
// @Summary      Borrar item (arrastra stock e historial)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
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
