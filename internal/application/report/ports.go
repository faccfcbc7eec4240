package report

// Exporter genera un archivo descargable a partir de un Document.
// Implementaciones: infrastructure/xlsx (hoja de cálculo) e infrastructure/pdf (imprimible).
type Exporter interface {
	Export(doc *Document) ([]byte, error)
	Extension() string
	ContentType() string
}
