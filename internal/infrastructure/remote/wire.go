package remote

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/pkg/money"
)

// Formas JSON del API remoto (claves en español, tal cual las envía el servidor).

type refWire struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Name   string `json:"name"`
}

func (r *refWire) toRef() *entity.Ref {
	if r == nil {
		return nil
	}
	name := r.Nombre
	if name == "" {
		name = r.Name
	}
	return &entity.Ref{ID: r.ID, Name: name}
}

type itemWire struct {
	ID               int64           `json:"id"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      int64           `json:"categoria_id"`
	LaboratorioID    int64           `json:"laboratorio_id"`
	Categoria        *refWire        `json:"categoria"`
	Laboratorio      *refWire        `json:"laboratorio"`
	Estado           string          `json:"estado"`
	Valor            json.RawMessage `json:"valor"`
	FechaAdquisicion string          `json:"fecha_adquisicion"`
	CreatedAt        string          `json:"created_at"`
}

func (w itemWire) toEntity() *entity.Item {
	it := &entity.Item{
		ID:           w.ID,
		Code:         w.Codigo,
		Name:         w.Nombre,
		Description:  w.Descripcion,
		CategoryID:   w.CategoriaID,
		LaboratoryID: w.LaboratorioID,
		Category:     w.Categoria.toRef(),
		Laboratory:   w.Laboratorio.toRef(),
		State:        w.Estado,
		Value:        money.Parse(rawAmount(w.Valor)),
		AcquiredAt:   parseDate(w.FechaAdquisicion),
	}
	if t := parseTime(w.CreatedAt); t != nil {
		it.CreatedAt = *t
	}
	if it.CategoryID == 0 && it.Category != nil {
		it.CategoryID = it.Category.ID
	}
	if it.LaboratoryID == 0 && it.Laboratory != nil {
		it.LaboratoryID = it.Laboratory.ID
	}
	return it
}

type itemPayload struct {
	Codigo           string  `json:"codigo"`
	Nombre           string  `json:"nombre"`
	Descripcion      string  `json:"descripcion"`
	CategoriaID      int64   `json:"categoria_id"`
	LaboratorioID    int64   `json:"laboratorio_id"`
	Estado           string  `json:"estado"`
	Valor            *string `json:"valor"`
	FechaAdquisicion *string `json:"fecha_adquisicion"`
}

func newItemPayload(it *entity.Item) itemPayload {
	p := itemPayload{
		Codigo:        it.Code,
		Nombre:        it.Name,
		Descripcion:   it.Description,
		CategoriaID:   it.CategoryID,
		LaboratorioID: it.LaboratoryID,
		Estado:        it.State,
	}
	if it.Value.Valid {
		v := it.Value.Decimal.StringFixed(2)
		p.Valor = &v
	}
	if it.AcquiredAt != nil {
		d := it.AcquiredAt.Format("2006-01-02")
		p.FechaAdquisicion = &d
	}
	return p
}

type consumableWire struct {
	ID           int64    `json:"id"`
	Nombre       string   `json:"nombre"`
	Descripcion  string   `json:"descripcion"`
	CategoriaID  int64    `json:"categoria_id"`
	Categoria    *refWire `json:"categoria"`
	Stock        int      `json:"stock"`
	StockMinimo  int      `json:"stock_minimo"`
	UnidadMedida string   `json:"unidad_medida"`
}

func (w consumableWire) toEntity() *entity.Consumable {
	c := &entity.Consumable{
		ID:          w.ID,
		Name:        w.Nombre,
		Description: w.Descripcion,
		CategoryID:  w.CategoriaID,
		Category:    w.Categoria.toRef(),
		Stock:       w.Stock,
		MinStock:    w.StockMinimo,
		Unit:        w.UnidadMedida,
	}
	if c.CategoryID == 0 && c.Category != nil {
		c.CategoryID = c.Category.ID
	}
	return c
}

type consumablePayload struct {
	Nombre       string `json:"nombre"`
	Descripcion  string `json:"descripcion"`
	CategoriaID  int64  `json:"categoria_id"`
	Stock        int    `json:"stock"`
	StockMinimo  int    `json:"stock_minimo"`
	UnidadMedida string `json:"unidad_medida"`
}

func newConsumablePayload(c *entity.Consumable) consumablePayload {
	return consumablePayload{
		Nombre:       c.Name,
		Descripcion:  c.Description,
		CategoriaID:  c.CategoryID,
		Stock:        c.Stock,
		StockMinimo:  c.MinStock,
		UnidadMedida: c.Unit,
	}
}

type movementWire struct {
	ID            int64    `json:"id"`
	ItemID        *int64   `json:"item_id"`
	ConsumibleID  *int64   `json:"consumible_id"`
	Item          *refWire `json:"item"`
	Consumible    *refWire `json:"consumible"`
	Tipo          string   `json:"tipo"`
	Cantidad      int      `json:"cantidad"`
	UsuarioID     *int64   `json:"usuario_id"`
	Usuario       *refWire `json:"usuario"`
	Observaciones string   `json:"observaciones"`
	CreatedAt     string   `json:"created_at"`
}

func (w movementWire) toEntity() *entity.Movement {
	m := &entity.Movement{
		ID:           w.ID,
		ItemID:       w.ItemID,
		ConsumableID: w.ConsumibleID,
		Item:         w.Item.toRef(),
		Consumable:   w.Consumible.toRef(),
		Type:         w.Tipo,
		Quantity:     w.Cantidad,
		UserID:       w.UsuarioID,
		User:         w.Usuario.toRef(),
		Notes:        w.Observaciones,
	}
	if t := parseTime(w.CreatedAt); t != nil {
		m.CreatedAt = *t
	}
	return m
}

type movementPayload struct {
	ItemID        *int64 `json:"item_id,omitempty"`
	ConsumibleID  *int64 `json:"consumible_id,omitempty"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	UsuarioID     *int64 `json:"usuario_id,omitempty"`
	Observaciones string `json:"observaciones"`
}

func newMovementPayload(m *entity.Movement) movementPayload {
	return movementPayload{
		ItemID:        m.ItemID,
		ConsumibleID:  m.ConsumableID,
		Tipo:          m.Type,
		Cantidad:      m.Quantity,
		UsuarioID:     m.UserID,
		Observaciones: m.Notes,
	}
}

type userWire struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Rol       string   `json:"rol"`
	CarreraID *int64   `json:"carrera_id"`
	Carrera   *refWire `json:"carrera"`
	CreatedAt string   `json:"created_at"`
}

func (w userWire) toEntity() *entity.User {
	u := &entity.User{
		ID:       w.ID,
		Name:     w.Name,
		Email:    w.Email,
		Role:     w.Rol,
		CareerID: w.CarreraID,
		Career:   w.Carrera.toRef(),
	}
	if t := parseTime(w.CreatedAt); t != nil {
		u.CreatedAt = *t
	}
	return u
}

type userPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Rol       string `json:"rol"`
	CarreraID *int64 `json:"carrera_id"`
}

func newUserPayload(u *entity.User, password string) userPayload {
	return userPayload{Name: u.Name, Email: u.Email, Password: password, Rol: u.Role, CarreraID: u.CareerID}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// rawAmount convierte el JSON de un monto (número, string o null) en algo que money.Parse entienda.
func rawAmount(raw json.RawMessage) any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return s
	}
	return json.Number(string(raw))
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseDate toma solo la parte AAAA-MM-DD (el servidor a veces la envía como timestamp).
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if len(s) < 10 {
		return nil
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return nil
	}
	return &t
}
