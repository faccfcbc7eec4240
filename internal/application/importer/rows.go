package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
)

// Defaults valores para columnas que el archivo no trae.
type Defaults struct {
	CategoryID     int64
	LaboratoryID   int64
	CurrencySymbol string
}

// itemRow campos mínimos de una fila de items.
type itemRow struct {
	Code string `json:"codigo" validate:"required"`
	Name string `json:"nombre" validate:"required"`
}

// consumableRow campos mínimos de una fila de consumibles.
type consumableRow struct {
	Name string `json:"nombre" validate:"required"`
}

// itemRequest arma la solicitud de alta de un item a partir de una fila.
// Acepta tanto los nombres de la API (categoria_id) como los encabezados del reporte exportado.
func itemRequest(rec Record, def Defaults) (dto.ItemRequest, error) {
	row := itemRow{Code: rec.Get("codigo", "code"), Name: rec.Get("nombre", "name")}
	if err := dto.Validate(row); err != nil {
		return dto.ItemRequest{}, err
	}
	req := dto.ItemRequest{
		Code:         row.Code,
		Name:         row.Name,
		Description:  rec.Get("descripcion"),
		CategoryID:   def.CategoryID,
		LaboratoryID: def.LaboratoryID,
		State:        strings.ToLower(rec.Get("estado")),
	}
	var err error
	if req.CategoryID, err = optionalID(rec.Get("categoria_id"), "categoria_id", def.CategoryID); err != nil {
		return req, err
	}
	if req.LaboratoryID, err = optionalID(rec.Get("laboratorio_id"), "laboratorio_id", def.LaboratoryID); err != nil {
		return req, err
	}
	if v := rec.Get("valor"); v != "" {
		req.Value = cleanAmount(v, def.CurrencySymbol)
	}
	if d := rec.Get("fecha_adquisicion", "fecha_de_adquisicion"); d != "" {
		if req.AcquiredAt, err = isoDate(d); err != nil {
			return req, err
		}
	}
	return req, nil
}

// consumableRequest arma la solicitud de alta de un consumible a partir de una fila.
func consumableRequest(rec Record, def Defaults) (dto.ConsumableRequest, error) {
	row := consumableRow{Name: rec.Get("nombre", "name")}
	if err := dto.Validate(row); err != nil {
		return dto.ConsumableRequest{}, err
	}
	req := dto.ConsumableRequest{
		Name:        row.Name,
		Description: rec.Get("descripcion"),
		Unit:        rec.Get("unidad_medida", "unidad"),
	}
	var err error
	if req.CategoryID, err = optionalID(rec.Get("categoria_id"), "categoria_id", def.CategoryID); err != nil {
		return req, err
	}
	if req.Stock, err = optionalInt(rec.Get("stock", "stock_actual"), "stock"); err != nil {
		return req, err
	}
	if req.MinStock, err = optionalInt(rec.Get("stock_minimo"), "stock_minimo"); err != nil {
		return req, err
	}
	return req, nil
}

func optionalID(s, field string, def int64) (int64, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSuffix(s, ".0"), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.Invalid(fmt.Sprintf("%s inválido: %q", field, s))
	}
	return n, nil
}

func optionalInt(s, field string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, ".0"))
	if err != nil {
		return 0, domain.Invalid(fmt.Sprintf("%s no es un número entero: %q", field, s))
	}
	return n, nil
}

// cleanAmount quita el símbolo de moneda del reporte exportado ("S/. 19.50" → "19.50").
func cleanAmount(s, symbol string) string {
	if symbol != "" {
		s = strings.TrimPrefix(s, symbol)
	}
	return strings.TrimSpace(s)
}

// isoDate acepta AAAA-MM-DD o DD/MM/AAAA (formato del reporte) y devuelve AAAA-MM-DD.
func isoDate(s string) (string, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", domain.Invalid(fmt.Sprintf("fecha_adquisicion inválida: %q", s))
}
