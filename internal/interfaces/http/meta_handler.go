package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/meta"
)

// MetaHandler agregado del dashboard (protegido).
type MetaHandler struct {
	uc *meta.UseCase
}

// NewMetaHandler construye el handler.
func NewMetaHandler(uc *meta.UseCase) *MetaHandler {
	return &MetaHandler{uc: uc}
}

// Fetch godoc
// @Summary      Resumen de la despensa
// @Tags         meta
// @Security     Bearer
// @Produce      json
// @Param        almostExpired  query  int  false  "Días de la ventana de casi-vencidos"
// @Success      200  {object}  dto.MetaResponse
// @Router       /api/meta [get]
func (h *MetaHandler) Fetch(c *fiber.Ctx) error {
	span := c.QueryInt("almostExpired", 0)
	out, err := h.uc.Fetch(c.Context(), span)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
