package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
	"github.com/jhoicas/Inventario-consola/pkg/money"
)

// ItemUseCase casos de uso CRUD para items. La validación ocurre antes de llamar al gateway.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// List lista items con filtros y paginación del gateway.
func (uc *ItemUseCase) List(ctx context.Context, q dto.ItemQuery) (*dto.ItemListResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, repository.ItemFilter{
		State:      q.State,
		Search:     strings.TrimSpace(q.Search),
		CategoryID: q.CategoryID,
		Paging:     paging(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{Data: make([]dto.ItemResponse, 0, len(page.Items)), Page: toPage(page)}
	for _, it := range page.Items {
		out.Data = append(out.Data, ToItemResponse(it))
	}
	return out, nil
}

// GetByID obtiene un item.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToItemResponse(it)
	return &out, nil
}

// Create valida y registra un item. Estado por defecto: activo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := ItemFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// Update reemplaza los datos editables de un item. Cualquier estado puede pasar a cualquier otro.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := ItemFromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// Delete elimina un item.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ItemFromRequest valida la entrada y la convierte en entidad.
// Lo comparten el formulario y la importación masiva.
func ItemFromRequest(in dto.ItemRequest) (*entity.Item, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	in.State = strings.ToLower(strings.TrimSpace(in.State))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.State == "" {
		in.State = entity.ItemStateActive
	}
	item := &entity.Item{
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		LaboratoryID: in.LaboratoryID,
		State:        in.State,
		Value:        money.Parse(in.Value),
	}
	if in.AcquiredAt != "" {
		t, err := time.Parse(dateLayout, in.AcquiredAt)
		if err != nil {
			return nil, domain.Invalid(fmt.Sprintf("fecha_adquisicion inválida: %q", in.AcquiredAt))
		}
		item.AcquiredAt = &t
	}
	return item, nil
}
