package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/inventory"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// ConsumableUseCase casos de uso para consumibles.
type ConsumableUseCase struct {
	repo repository.ConsumableRepository
}

// NewConsumableUseCase construye el caso de uso.
func NewConsumableUseCase(repo repository.ConsumableRepository) *ConsumableUseCase {
	return &ConsumableUseCase{repo: repo}
}

// List trae los consumibles del gateway, aplica el filtro de estado de stock con el
// clasificador y pagina localmente. LowStock cuenta LOW+CRITICAL antes de filtrar por estado.
func (uc *ConsumableUseCase) List(ctx context.Context, q dto.ConsumableQuery) (*dto.ConsumableListResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	all, err := uc.repo.ListAll(ctx, repository.ConsumableFilter{
		Search:     strings.TrimSpace(q.Search),
		CategoryID: q.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	low := 0
	filtered := make([]*entity.Consumable, 0, len(all))
	for _, c := range all {
		status := inventory.ClassifyStock(c.Stock, c.MinStock)
		if status.IsAlert() {
			low++
		}
		if status.MatchesFilter(q.StockStatus) {
			filtered = append(filtered, c)
		}
	}

	rows, page := Paginate(filtered, paging(q.PageRequest))
	out := &dto.ConsumableListResponse{
		Data:     make([]dto.ConsumableResponse, 0, len(rows)),
		Page:     page,
		LowStock: low,
	}
	for _, c := range rows {
		out.Data = append(out.Data, ToConsumableResponse(c))
	}
	return out, nil
}

// GetByID obtiene un consumible con su estado de stock.
func (uc *ConsumableUseCase) GetByID(ctx context.Context, id int64) (*dto.ConsumableResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToConsumableResponse(c)
	return &out, nil
}

// Create valida y registra un consumible.
func (uc *ConsumableUseCase) Create(ctx context.Context, in dto.ConsumableRequest) (*dto.ConsumableResponse, error) {
	c, err := ConsumableFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := ToConsumableResponse(c)
	return &out, nil
}

// Update reemplaza los datos de un consumible (incluido el stock, que se corrige a mano).
func (uc *ConsumableUseCase) Update(ctx context.Context, id int64, in dto.ConsumableRequest) (*dto.ConsumableResponse, error) {
	c, err := ConsumableFromRequest(in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := ToConsumableResponse(c)
	return &out, nil
}

// Delete elimina un consumible.
func (uc *ConsumableUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ConsumableFromRequest valida la entrada y la convierte en entidad.
func ConsumableFromRequest(in dto.ConsumableRequest) (*entity.Consumable, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return &entity.Consumable{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Unit:        strings.TrimSpace(in.Unit),
	}, nil
}
