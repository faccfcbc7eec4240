package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/domain"
)

// ReportHandler estadísticas y descargas Excel/PDF.
type ReportHandler struct {
	uc    *report.UseCase
	excel report.Exporter
	pdf   report.Exporter
}

// NewReportHandler construye el handler con un exportador por formato.
func NewReportHandler(uc *report.UseCase, excel, pdf report.Exporter) *ReportHandler {
	return &ReportHandler{uc: uc, excel: excel, pdf: pdf}
}

func entityParam(c *fiber.Ctx) (report.Entity, error) {
	e, ok := report.ParseEntity(c.Params("entidad"))
	if !ok {
		return "", domain.Invalid(fmt.Sprintf("entidad inválida %q (use items, consumibles o movimientos)", c.Params("entidad")))
	}
	return e, nil
}

// Stats godoc
// @Summary      Contadores del reporte (los mismos que encabezan el PDF)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        entidad  path  string  true  "items | consumibles | movimientos"
// @Success      200  {object}  dto.StatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/{entidad}/estadisticas [get]
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	e, err := entityParam(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Stats(c.Context(), e)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Excel godoc
// @Summary      Descargar reporte Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        entidad  path  string  true  "items | consumibles | movimientos"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/{entidad}/excel [get]
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	return h.download(c, h.excel)
}

// PDF godoc
// @Summary      Descargar reporte PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        entidad  path  string  true  "items | consumibles | movimientos"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/{entidad}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	return h.download(c, h.pdf)
}

func (h *ReportHandler) download(c *fiber.Ctx, exp report.Exporter) error {
	e, err := entityParam(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.Export(c.Context(), e, exp)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
