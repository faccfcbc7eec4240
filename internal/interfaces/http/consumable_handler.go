package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
)

// ConsumableHandler CRUD de consumibles.
type ConsumableHandler struct {
	uc *usecase.ConsumableUseCase
}

func NewConsumableHandler(uc *usecase.ConsumableUseCase) *ConsumableHandler {
	return &ConsumableHandler{uc: uc}
}

// List godoc
// @Summary      Listar consumibles con su estado de stock
// @Tags         consumibles
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Nombre"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        stock_status  query  string  false  "normal | bajo | critico"
// @Param        page          query  int     false  "Página"      default(1)
// @Param        per_page      query  int     false  "Por página"  default(10)
// @Success      200  {object}  dto.ConsumableListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/consumibles [get]
func (h *ConsumableHandler) List(c *fiber.Ctx) error {
	var q dto.ConsumableQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener consumible
// @Tags         consumibles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del consumible"
// @Success      200  {object}  dto.ConsumableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumibles/{id} [get]
func (h *ConsumableHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear consumible
// @Tags         consumibles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumableRequest  true  "Datos del consumible"
// @Success      201   {object}  dto.ConsumableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consumibles [post]
func (h *ConsumableHandler) Create(c *fiber.Ctx) error {
	var in dto.ConsumableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar consumible
// @Tags         consumibles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del consumible"
// @Param        body  body  dto.ConsumableRequest  true  "Datos del consumible"
// @Success      200   {object}  dto.ConsumableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consumibles/{id} [put]
func (h *ConsumableHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ConsumableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar consumible
// @Tags         consumibles
// @Security     Bearer
// @Param        id   path  int  true  "ID del consumible"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumibles/{id} [delete]
func (h *ConsumableHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
