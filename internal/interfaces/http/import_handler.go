package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/importer"
	"github.com/jhoicas/Inventario-consola/internal/domain"
)

// formField campo multipart con el archivo a importar.
const formField = "archivo"

// ImportHandler vista previa e importación masiva desde .xlsx o .csv.
type ImportHandler struct {
	uc *importer.UseCase
}

func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

func targetParam(c *fiber.Ctx) (importer.Target, error) {
	t, ok := importer.ParseTarget(c.Params("entidad"))
	if !ok {
		return "", domain.Invalid(fmt.Sprintf("entidad inválida %q (use items o consumibles)", c.Params("entidad")))
	}
	return t, nil
}

// readUpload devuelve nombre y contenido del archivo subido.
func readUpload(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile(formField)
	if err != nil {
		return "", nil, domain.Invalid("adjunte el archivo en el campo " + formField)
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("%w: abrir archivo: %w", domain.ErrParse, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: leer archivo: %w", domain.ErrParse, err)
	}
	return fh.Filename, data, nil
}

// Preview godoc
// @Summary      Vista previa de importación (encabezados y primeras 5 filas)
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        entidad  path      string  true  "items | consumibles"
// @Param        archivo  formData  file    true  ".xlsx o .csv"
// @Success      200  {object}  dto.ImportPreviewResponse
// @Failure      400  {object}  dto.ErrorResponse  "PARSE_ERROR"
// @Router       /api/importar/{entidad}/preview [post]
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	if _, err := targetParam(c); err != nil {
		return respondError(c, err)
	}
	name, data, err := readUpload(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Preview(name, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar filas como altas individuales
// @Description  Las filas inválidas o rechazadas se informan en fallos sin detener el resto.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        entidad  path      string  true  "items | consumibles"
// @Param        archivo  formData  file    true  ".xlsx o .csv"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse  "PARSE_ERROR"
// @Router       /api/importar/{entidad} [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	target, err := targetParam(c)
	if err != nil {
		return respondError(c, err)
	}
	name, data, err := readUpload(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Import(c.Context(), target, name, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
