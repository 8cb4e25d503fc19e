package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// TagHandler maneja las peticiones HTTP para Tag (protegido).
type TagHandler struct {
	uc *usecase.TagUseCase
}

// NewTagHandler construye el handler.
func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{uc: uc}
}

// List godoc
// @Summary      Listar etiquetas
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TagResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear etiqueta
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTagRequest  true  "label, description, color"
// @Success      201   {object}  dto.TagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
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
// @Summary      Actualizar etiqueta
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la etiqueta"
// @Param        body  body  dto.UpdateTagRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TagResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [put]
func (h *TagHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateTagRequest
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
// @Summary      Borrar etiqueta (se retira de los items)
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.TagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
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
