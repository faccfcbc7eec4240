// Package importer carga items y consumibles en lote desde hojas .xlsx o .csv.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Inventario-consola/internal/domain"
)

// Sheet contenido tabular de un archivo: encabezados y filas de datos.
// Lines guarda, por cada fila de Rows, su número de fila de datos en el archivo
// (1 = primera fila bajo los encabezados), contando las filas en blanco descartadas.
type Sheet struct {
	Headers []string
	Rows    [][]string
	Lines   []int
}

// Line número de fila en el archivo de Rows[i].
func (s *Sheet) Line(i int) int {
	if i < len(s.Lines) {
		return s.Lines[i]
	}
	return i + 1
}

// Decoder lee un formato de archivo concreto.
type Decoder interface {
	Decode(data []byte) (*Sheet, error)
}

// Decoders decodificadores por extensión (".xlsx", ".csv").
type Decoders map[string]Decoder

// Parse elige el decodificador por extensión y normaliza el resultado.
// Cualquier fallo se devuelve envuelto en domain.ErrParse.
func (d Decoders) Parse(filename string, data []byte) (*Sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	dec, ok := d[ext]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado (use .xlsx o .csv)", domain.ErrParse, ext)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, domain.ErrEmptyFile)
	}
	sh, err := dec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	sh = sh.normalize()
	if len(sh.Headers) == 0 || len(sh.Rows) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, domain.ErrEmptyFile)
	}
	return sh, nil
}

// normalize recorta celdas y descarta filas totalmente vacías conservando su número original.
func (s *Sheet) normalize() *Sheet {
	out := &Sheet{}
	for _, h := range s.Headers {
		out.Headers = append(out.Headers, strings.TrimSpace(h))
	}
	for i := len(out.Headers) - 1; i >= 0 && out.Headers[i] == ""; i-- {
		out.Headers = out.Headers[:i]
	}
	for n, row := range s.Rows {
		empty := true
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
			if cells[i] != "" {
				empty = false
			}
		}
		if !empty {
			out.Rows = append(out.Rows, cells)
			out.Lines = append(out.Lines, s.Line(n))
		}
	}
	return out
}

// placeholder celda vacía en los reportes exportados; al reimportar equivale a "sin dato".
const placeholder = "-"

// Record fila indexada por clave de encabezado normalizada.
type Record map[string]string

// Get devuelve el primer valor no vacío entre las claves dadas.
func (r Record) Get(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// Records convierte cada fila en un Record usando los encabezados normalizados.
func (s *Sheet) Records() []Record {
	keys := make([]string, len(s.Headers))
	for i, h := range s.Headers {
		keys[i] = HeaderKey(h)
	}
	out := make([]Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		rec := make(Record, len(keys))
		for i, k := range keys {
			if k == "" || i >= len(row) {
				continue
			}
			v := row[i]
			if v == placeholder {
				v = ""
			}
			if _, dup := rec[k]; !dup {
				rec[k] = v
			}
		}
		out = append(out, rec)
	}
	return out
}

// HeaderKey "Fecha de Adquisición" → "fecha_de_adquisicion".
func HeaderKey(h string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), h)
	if err != nil {
		folded = h
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), "_")
}
