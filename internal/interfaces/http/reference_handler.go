package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
)

// ReferenceHandler catálogos para los selectores de los formularios.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReferenceListResponse
// @Router       /api/categorias [get]
func (h *ReferenceHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Laboratories godoc
// @Summary      Listar laboratorios
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReferenceListResponse
// @Router       /api/laboratorios [get]
func (h *ReferenceHandler) Laboratories(c *fiber.Ctx) error {
	out, err := h.uc.Laboratories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Careers godoc
// @Summary      Listar carreras
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReferenceListResponse
// @Router       /api/carreras [get]
func (h *ReferenceHandler) Careers(c *fiber.Ctx) error {
	out, err := h.uc.Careers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
