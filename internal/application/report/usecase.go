package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// Settings datos fijos de los reportes.
type Settings struct {
	Institution    string
	CurrencySymbol string
	Location       *time.Location
}

// File archivo generado listo para descargar.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// UseCase estadísticas y exportación de reportes.
// Cada llamada trabaja sobre una copia recién traída del gateway; nada se cachea.
type UseCase struct {
	items       repository.ItemRepository
	consumables repository.ConsumableRepository
	movements   repository.MovementRepository
	settings    Settings
	now         func() time.Time
}

// NewUseCase construye el caso de uso inyectando los puertos del gateway.
func NewUseCase(
	items repository.ItemRepository,
	consumables repository.ConsumableRepository,
	movements repository.MovementRepository,
	settings Settings,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &UseCase{
		items:       items,
		consumables: consumables,
		movements:   movements,
		settings:    settings,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Stats resumen de la entidad, el mismo que encabeza el PDF.
func (uc *UseCase) Stats(ctx context.Context, e Entity) (*dto.StatsResponse, error) {
	doc, err := uc.Build(ctx, e)
	if err != nil {
		return nil, err
	}
	out := &dto.StatsResponse{
		Entity:   string(e),
		Total:    doc.Summary.Total,
		Counters: make([]dto.CounterResponse, 0, len(doc.Summary.Counters)),
	}
	for _, c := range doc.Summary.Counters {
		out.Counters = append(out.Counters, dto.CounterResponse{Key: c.Key, Label: c.Label, Value: c.Value})
	}
	return out, nil
}

// Build trae la colección completa y arma resumen y tabla.
func (uc *UseCase) Build(ctx context.Context, e Entity) (*Document, error) {
	opts := Options{CurrencySymbol: uc.settings.CurrencySymbol, Location: uc.settings.Location}
	doc := &Document{
		Entity:      e,
		Title:       e.Title(),
		Institution: uc.settings.Institution,
		GeneratedAt: uc.now().In(uc.settings.Location),
	}

	switch e {
	case EntityItems:
		items, err := uc.items.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("report: listar items: %w", err)
		}
		doc.Summary = SummarizeItems(items)
		doc.Table = ItemsTable(items, opts)
	case EntityConsumables:
		cs, err := uc.consumables.ListAll(ctx, repository.ConsumableFilter{})
		if err != nil {
			return nil, fmt.Errorf("report: listar consumibles: %w", err)
		}
		doc.Summary = SummarizeConsumables(cs)
		doc.Table = ConsumablesTable(cs)
	case EntityMovements:
		ms, err := uc.movements.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("report: listar movimientos: %w", err)
		}
		doc.Summary = SummarizeMovements(ms)
		doc.Table = MovementsTable(ms, opts)
	default:
		return nil, domain.Invalid(fmt.Sprintf("entidad de reporte desconocida: %q", e))
	}
	return doc, nil
}

// Export genera el archivo con el exportador indicado.
// Los fallos del exportador se marcan con domain.ErrExport; los del gateway conservan su error.
func (uc *UseCase) Export(ctx context.Context, e Entity, exp Exporter) (*File, error) {
	doc, err := uc.Build(ctx, e)
	if err != nil {
		return nil, err
	}
	content, err := exp.Export(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrExport, exp.Extension(), err)
	}
	return &File{
		Name:        e.FileName(exp.Extension(), doc.GeneratedAt),
		ContentType: exp.ContentType(),
		Content:     content,
	}, nil
}
