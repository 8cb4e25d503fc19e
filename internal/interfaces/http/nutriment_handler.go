package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// NutrimentHandler catálogo de tipos de nutrimento (protegido, solo lectura).
type NutrimentHandler struct {
	uc *usecase.NutrimentTypeUseCase
}

// NewNutrimentHandler construye el handler.
func NewNutrimentHandler(uc *usecase.NutrimentTypeUseCase) *NutrimentHandler {
	return &NutrimentHandler{uc: uc}
}

// List godoc
// @Summary      Listar tipos de nutrimento
// @Tags         nutriments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NutrimentTypeResponse
// @Router       /api/nutriments [get]
func (h *NutrimentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
