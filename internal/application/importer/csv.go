package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVDecoder lee CSV con encabezado en la primera fila. Acepta "," o ";" como separador
// (Excel en español exporta con ";") y archivos en Windows-1252 cuando no son UTF-8.
type CSVDecoder struct{}

func (CSVDecoder) Decode(data []byte) (*Sheet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = detectSeparator(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	// csv.Reader salta las líneas vacías; FieldPos conserva la línea real de cada registro.
	sh := &Sheet{}
	headerLine := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)
		if sh.Headers == nil {
			sh.Headers, headerLine = rec, line
			continue
		}
		sh.Rows = append(sh.Rows, rec)
		sh.Lines = append(sh.Lines, line-headerLine)
	}
	return sh, nil
}

func detectSeparator(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
