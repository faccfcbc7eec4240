package importer

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
	"github.com/jhoicas/Inventario-consola/pkg/logger"
)

// previewRows filas que muestra la vista previa.
const previewRows = 5

// Target entidad destino de una importación.
type Target string

const (
	TargetItems       Target = "items"
	TargetConsumables Target = "consumibles"
)

// ParseTarget valida el segmento :entidad de la ruta de importación.
func ParseTarget(s string) (Target, bool) {
	switch t := Target(s); t {
	case TargetItems, TargetConsumables:
		return t, true
	}
	return "", false
}

// Settings límites y valores por defecto de la importación.
type Settings struct {
	Concurrency int
	MaxBytes    int64
	Defaults    Defaults
}

// UseCase vista previa e importación masiva.
type UseCase struct {
	items       repository.ItemRepository
	consumables repository.ConsumableRepository
	decoders    Decoders
	settings    Settings
	log         *logger.Logger
}

// NewUseCase construye el caso de uso. decoders asocia extensión → lector.
func NewUseCase(
	items repository.ItemRepository,
	consumables repository.ConsumableRepository,
	decoders Decoders,
	settings Settings,
	log *logger.Logger,
) *UseCase {
	if settings.Concurrency <= 0 {
		settings.Concurrency = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		items:       items,
		consumables: consumables,
		decoders:    decoders,
		settings:    settings,
		log:         log.Component("importer"),
	}
}

func (uc *UseCase) parse(filename string, data []byte) (*Sheet, error) {
	if uc.settings.MaxBytes > 0 && int64(len(data)) > uc.settings.MaxBytes {
		return nil, domain.Invalid(fmt.Sprintf("el archivo supera el máximo de %d MB", uc.settings.MaxBytes>>20))
	}
	return uc.decoders.Parse(filename, data)
}

// Preview encabezados, primeras filas y total de filas de datos. No llama al gateway.
func (uc *UseCase) Preview(filename string, data []byte) (*dto.ImportPreviewResponse, error) {
	sh, err := uc.parse(filename, data)
	if err != nil {
		return nil, err
	}
	n := len(sh.Rows)
	if n > previewRows {
		n = previewRows
	}
	return &dto.ImportPreviewResponse{Headers: sh.Headers, Rows: sh.Rows[:n], Total: len(sh.Rows)}, nil
}

// Import crea un registro por fila con concurrencia acotada. Una fila inválida o rechazada
// por el gateway se anota como fallo sin abortar las demás. Las filas se numeran desde 1.
func (uc *UseCase) Import(ctx context.Context, target Target, filename string, data []byte) (*dto.ImportResultResponse, error) {
	sh, err := uc.parse(filename, data)
	if err != nil {
		return nil, err
	}
	records := sh.Records()
	batchID := uuid.NewString()
	log := uc.log.Zerolog().With().Str("lote_id", batchID).Str("entidad", string(target)).Logger()

	var create func(ctx context.Context, rec Record) error
	switch target {
	case TargetItems:
		create = uc.createItem
	case TargetConsumables:
		create = uc.createConsumable
	default:
		return nil, domain.Invalid(fmt.Sprintf("entidad de importación desconocida: %q", target))
	}

	errs := make([]error, len(records))
	var imported atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(uc.settings.Concurrency)
	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			if err := create(ctx, rec); err != nil {
				errs[i] = err
				return nil
			}
			imported.Add(1)
			return nil
		})
	}
	_ = g.Wait() // las goroutines nunca devuelven error: los fallos quedan en errs

	out := &dto.ImportResultResponse{BatchID: batchID, Imported: int(imported.Load()), Failures: []dto.ImportFailure{}}
	for i, err := range errs {
		if err == nil {
			continue
		}
		row := sh.Line(i)
		out.Failures = append(out.Failures, dto.ImportFailure{Row: row, Error: err.Error()})
		log.Warn().Int("fila", row).Err(err).Msg("fila no importada")
	}
	out.Failed = len(out.Failures)
	log.Info().Int("importados", out.Imported).Int("errores", out.Failed).Msg("importación finalizada")
	return out, nil
}

func (uc *UseCase) createItem(ctx context.Context, rec Record) error {
	req, err := itemRequest(rec, uc.settings.Defaults)
	if err != nil {
		return err
	}
	item, err := usecase.ItemFromRequest(req)
	if err != nil {
		return err
	}
	return uc.items.Create(ctx, item)
}

func (uc *UseCase) createConsumable(ctx context.Context, rec Record) error {
	req, err := consumableRequest(rec, uc.settings.Defaults)
	if err != nil {
		return err
	}
	c, err := usecase.ConsumableFromRequest(req)
	if err != nil {
		return err
	}
	return uc.consumables.Create(ctx, c)
}
