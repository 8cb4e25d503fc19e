package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// GroupHandler maneja las peticiones HTTP para Group (protegido).
type GroupHandler struct {
	uc *usecase.GroupUseCase
}

// NewGroupHandler construye el handler.
func NewGroupHandler(uc *usecase.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// List godoc
// @Summary      Listar grupos
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GroupResponse
// @Router       /api/groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo por ID
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.GroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [get]
func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear grupo
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGroupRequest  true  "Datos del grupo"
// @Success      201   {object}  dto.GroupResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
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
// @Summary      Actualizar grupo
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.UpdateGroupRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GroupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [put]
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateGroupRequest
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
// @Summary      Borrar grupo (anula las referencias en items)
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.GroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
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
