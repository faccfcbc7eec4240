package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// MovementUseCase historial y registro de movimientos.
type MovementUseCase struct {
	repo repository.MovementRepository
	now  func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, now: time.Now}
}

// List historial paginado, opcionalmente filtrado por tipo.
func (uc *MovementUseCase) List(ctx context.Context, q dto.MovementQuery) (*dto.MovementListResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, repository.MovementFilter{Type: q.Type, Paging: paging(q.PageRequest)})
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{Data: make([]dto.MovementResponse, 0, len(page.Items)), Page: toPage(page)}
	for _, m := range page.Items {
		out.Data = append(out.Data, ToMovementResponse(m))
	}
	return out, nil
}

// Create registra un movimiento a nombre del usuario autenticado.
// Exige exactamente uno de item_id / consumible_id. No toca el stock: lo ajusta el servidor de datos.
func (uc *MovementUseCase) Create(ctx context.Context, userID int64, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hasItem := in.ItemID != nil && *in.ItemID > 0
	hasConsumable := in.ConsumableID != nil && *in.ConsumableID > 0
	if hasItem == hasConsumable {
		return nil, domain.Invalid("indique un item_id o un consumible_id (solo uno)")
	}

	m := &entity.Movement{
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: uc.now(),
	}
	if hasItem {
		m.ItemID = in.ItemID
	} else {
		m.ConsumableID = in.ConsumableID
	}
	if userID > 0 {
		m.UserID = &userID
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := ToMovementResponse(m)
	return &out, nil
}
