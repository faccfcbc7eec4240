package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-consola/internal/application/importer"
)

// Reader implementa importer.Decoder leyendo la primera hoja del libro.
type Reader struct{}

// Decode primera fila = encabezados; el resto son datos.
func (Reader) Decode(data []byte) (*importer.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xlsx: abrir libro: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &importer.Sheet{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &importer.Sheet{}, nil
	}
	return &importer.Sheet{Headers: rows[0], Rows: rows[1:]}, nil
}
