package dto

// ImportPreviewResponse vista previa de un archivo: encabezados, primeras filas y total.
type ImportPreviewResponse struct {
	Headers []string   `json:"encabezados"`
	Rows    [][]string `json:"filas"`
	Total   int        `json:"total"`
}

// ImportFailure fila que no se pudo importar (Row empieza en 1 = primera fila de datos;
// las filas en blanco del archivo también cuentan).
type ImportFailure struct {
	Row   int    `json:"fila"`
	Error string `json:"error"`
}

// ImportResultResponse resultado de una importación masiva.
type ImportResultResponse struct {
	BatchID  string          `json:"lote_id"`
	Imported int             `json:"importados"`
	Failed   int             `json:"errores"`
	Failures []ImportFailure `json:"fallos"`
}
