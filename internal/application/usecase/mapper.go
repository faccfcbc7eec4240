package usecase

import (
	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/inventory"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
	"github.com/jhoicas/Inventario-consola/pkg/money"
)

const dateLayout = "2006-01-02"

func toRef(r *entity.Ref) *dto.RefResponse {
	if r == nil {
		return nil
	}
	return &dto.RefResponse{ID: r.ID, Name: r.Name}
}

func toPage[T any](p *repository.Page[T]) dto.PageResponse {
	return dto.PageResponse{
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
	}
}

// ToItemResponse mapea la entidad a su salida; Valor siempre con dos decimales.
func ToItemResponse(it *entity.Item) dto.ItemResponse {
	out := dto.ItemResponse{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		Description:  it.Description,
		CategoryID:   it.CategoryID,
		LaboratoryID: it.LaboratoryID,
		Category:     toRef(it.Category),
		Laboratory:   toRef(it.Laboratory),
		State:        it.State,
		Value:        money.Format(it.Value),
	}
	if it.AcquiredAt != nil {
		s := it.AcquiredAt.Format(dateLayout)
		out.AcquiredAt = &s
	}
	if !it.CreatedAt.IsZero() {
		t := it.CreatedAt
		out.CreatedAt = &t
	}
	return out
}

// ToConsumableResponse mapea el consumible y lo anota con su estado de stock.
func ToConsumableResponse(c *entity.Consumable) dto.ConsumableResponse {
	status := inventory.ClassifyStock(c.Stock, c.MinStock)
	return dto.ConsumableResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CategoryID:  c.CategoryID,
		Category:    toRef(c.Category),
		Stock:       c.Stock,
		MinStock:    c.MinStock,
		Unit:        c.Unit,
		StockStatus: string(status),
		StockLabel:  status.Label(),
	}
}

// ToMovementResponse mapea un movimiento; Target queda en "-" si el gateway no envía el join.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ItemID:       m.ItemID,
		ConsumableID: m.ConsumableID,
		Target:       m.TargetName("-"),
		Type:         m.Type,
		Quantity:     m.Quantity,
		User:         toRef(m.User),
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

// ToUserResponse mapea un usuario (nunca incluye la contraseña).
func ToUserResponse(u *entity.User) dto.UserResponse {
	out := dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		CareerID: u.CareerID,
		Career:   toRef(u.Career),
	}
	if !u.CreatedAt.IsZero() {
		t := u.CreatedAt
		out.CreatedAt = &t
	}
	return out
}
