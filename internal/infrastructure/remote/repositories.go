package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// Verificar en tiempo de compilación que los adaptadores implementan los puertos.
var (
	_ repository.ItemRepository       = (*ItemRepository)(nil)
	_ repository.ConsumableRepository = (*ConsumableRepository)(nil)
	_ repository.MovementRepository   = (*MovementRepository)(nil)
	_ repository.UserRepository       = (*UserRepository)(nil)
	_ repository.ReferenceRepository  = (*ReferenceRepository)(nil)
)

const (
	pathItems        = "/items"
	pathConsumables  = "/consumibles"
	pathMovements    = "/movimientos"
	pathUsers        = "/usuarios"
	pathCategories   = "/categorias"
	pathLaboratories = "/laboratorios"
	pathCareers      = "/carreras"
	pathLogin        = "/login"
)

func toPage[W any, E any](items []W, meta pageMeta, perPage int, conv func(W) E) *repository.Page[E] {
	out := &repository.Page[E]{
		Items:       make([]E, 0, len(items)),
		CurrentPage: meta.CurrentPage,
		LastPage:    meta.LastPage,
		PerPage:     meta.PerPage,
		Total:       meta.Total,
	}
	if out.PerPage == 0 {
		out.PerPage = perPage
	}
	for _, w := range items {
		out.Items = append(out.Items, conv(w))
	}
	return out
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIDIf(q url.Values, key string, id int64) {
	if id > 0 {
		q.Set(key, strconv.FormatInt(id, 10))
	}
}

// ── Items ─────────────────────────────────────────────────────────────────────

// ItemRepository implementa repository.ItemRepository sobre /items.
type ItemRepository struct{ c *Client }

func NewItemRepository(c *Client) *ItemRepository { return &ItemRepository{c: c} }

func (r *ItemRepository) List(ctx context.Context, f repository.ItemFilter) (*repository.Page[*entity.Item], error) {
	p := f.Paging.Normalize()
	q := pagingQuery(p.Page, p.PerPage)
	setIf(q, "estado", f.State)
	setIf(q, "search", f.Search)
	setIDIf(q, "categoria_id", f.CategoryID)
	items, meta, err := listPage[itemWire](ctx, r.c, pathItems, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, meta, p.PerPage, itemWire.toEntity), nil
}

func (r *ItemRepository) ListAll(ctx context.Context) ([]*entity.Item, error) {
	wires, err := listAll[itemWire](ctx, r.c, pathItems, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Item, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var w itemWire
	if err := r.c.do(ctx, http.MethodGet, idPath(pathItems, id), nil, nil, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	var w itemWire
	if err := r.c.do(ctx, http.MethodPost, pathItems, nil, newItemPayload(item), &w); err != nil {
		return err
	}
	mergeItem(item, w)
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	var w itemWire
	if err := r.c.do(ctx, http.MethodPut, idPath(pathItems, item.ID), nil, newItemPayload(item), &w); err != nil {
		return err
	}
	mergeItem(item, w)
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath(pathItems, id), nil, nil, nil)
}

// mergeItem copia lo que asigna el servidor (id, joins, fechas) sin pisar lo enviado.
func mergeItem(item *entity.Item, w itemWire) {
	if w.ID != 0 {
		item.ID = w.ID
	}
	got := w.toEntity()
	if got.Category != nil {
		item.Category = got.Category
	}
	if got.Laboratory != nil {
		item.Laboratory = got.Laboratory
	}
	if !got.CreatedAt.IsZero() {
		item.CreatedAt = got.CreatedAt
	}
}

// ── Consumibles ───────────────────────────────────────────────────────────────

// ConsumableRepository implementa repository.ConsumableRepository sobre /consumibles.
type ConsumableRepository struct{ c *Client }

func NewConsumableRepository(c *Client) *ConsumableRepository { return &ConsumableRepository{c: c} }

func (r *ConsumableRepository) ListAll(ctx context.Context, f repository.ConsumableFilter) ([]*entity.Consumable, error) {
	q := url.Values{}
	setIf(q, "search", f.Search)
	setIDIf(q, "categoria_id", f.CategoryID)
	wires, err := listAll[consumableWire](ctx, r.c, pathConsumables, q)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Consumable, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (r *ConsumableRepository) GetByID(ctx context.Context, id int64) (*entity.Consumable, error) {
	var w consumableWire
	if err := r.c.do(ctx, http.MethodGet, idPath(pathConsumables, id), nil, nil, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *ConsumableRepository) Create(ctx context.Context, c *entity.Consumable) error {
	var w consumableWire
	if err := r.c.do(ctx, http.MethodPost, pathConsumables, nil, newConsumablePayload(c), &w); err != nil {
		return err
	}
	mergeConsumable(c, w)
	return nil
}

func (r *ConsumableRepository) Update(ctx context.Context, c *entity.Consumable) error {
	var w consumableWire
	if err := r.c.do(ctx, http.MethodPut, idPath(pathConsumables, c.ID), nil, newConsumablePayload(c), &w); err != nil {
		return err
	}
	mergeConsumable(c, w)
	return nil
}

func (r *ConsumableRepository) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath(pathConsumables, id), nil, nil, nil)
}

func mergeConsumable(c *entity.Consumable, w consumableWire) {
	if w.ID != 0 {
		c.ID = w.ID
	}
	if w.Categoria != nil {
		c.Category = w.Categoria.toRef()
	}
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// MovementRepository implementa repository.MovementRepository sobre /movimientos.
type MovementRepository struct{ c *Client }

func NewMovementRepository(c *Client) *MovementRepository { return &MovementRepository{c: c} }

func (r *MovementRepository) List(ctx context.Context, f repository.MovementFilter) (*repository.Page[*entity.Movement], error) {
	p := f.Paging.Normalize()
	q := pagingQuery(p.Page, p.PerPage)
	setIf(q, "tipo", f.Type)
	items, meta, err := listPage[movementWire](ctx, r.c, pathMovements, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, meta, p.PerPage, movementWire.toEntity), nil
}

func (r *MovementRepository) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	wires, err := listAll[movementWire](ctx, r.c, pathMovements, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (r *MovementRepository) Create(ctx context.Context, m *entity.Movement) error {
	var w movementWire
	if err := r.c.do(ctx, http.MethodPost, pathMovements, nil, newMovementPayload(m), &w); err != nil {
		return err
	}
	if w.ID != 0 {
		m.ID = w.ID
	}
	got := w.toEntity()
	if got.Item != nil {
		m.Item = got.Item
	}
	if got.Consumable != nil {
		m.Consumable = got.Consumable
	}
	if got.User != nil {
		m.User = got.User
	}
	if !got.CreatedAt.IsZero() {
		m.CreatedAt = got.CreatedAt
	}
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepository implementa repository.UserRepository sobre /usuarios y /login.
type UserRepository struct{ c *Client }

func NewUserRepository(c *Client) *UserRepository { return &UserRepository{c: c} }

func (r *UserRepository) List(ctx context.Context, f repository.UserFilter) (*repository.Page[*entity.User], error) {
	p := f.Paging.Normalize()
	q := pagingQuery(p.Page, p.PerPage)
	setIf(q, "rol", f.Role)
	setIf(q, "search", f.Search)
	items, meta, err := listPage[userWire](ctx, r.c, pathUsers, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, meta, p.PerPage, userWire.toEntity), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var w userWire
	if err := r.c.do(ctx, http.MethodGet, idPath(pathUsers, id), nil, nil, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User, password string) error {
	var w userWire
	if err := r.c.do(ctx, http.MethodPost, pathUsers, nil, newUserPayload(u, password), &w); err != nil {
		return err
	}
	mergeUser(u, w)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User, password string) error {
	var w userWire
	if err := r.c.do(ctx, http.MethodPut, idPath(pathUsers, u.ID), nil, newUserPayload(u, password), &w); err != nil {
		return err
	}
	mergeUser(u, w)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath(pathUsers, id), nil, nil, nil)
}

func mergeUser(u *entity.User, w userWire) {
	if w.ID != 0 {
		u.ID = w.ID
	}
	if w.Carrera != nil {
		u.Career = w.Carrera.toRef()
	}
	if t := parseTime(w.CreatedAt); t != nil {
		u.CreatedAt = *t
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginWire struct {
	Token string   `json:"token"`
	User  userWire `json:"user"`
}

// Authenticate valida credenciales con POST /login. El token remoto se descarta:
// la consola emite el suyo.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	var w loginWire
	err := r.c.do(ctx, http.MethodPost, pathLogin, nil, loginPayload{Email: email, Password: password}, &w)
	if err != nil {
		return nil, err
	}
	if w.User.ID == 0 {
		return nil, domain.ErrUnauthorized
	}
	return w.User.toEntity(), nil
}

type passwordPayload struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ChangePassword POST /usuarios/{id}/password; el servidor valida la contraseña actual.
func (r *UserRepository) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	body := passwordPayload{CurrentPassword: current, Password: next, PasswordConfirmation: next}
	return r.c.do(ctx, http.MethodPost, idPath(pathUsers, userID)+"/password", nil, body, nil)
}

// ── Catálogos ─────────────────────────────────────────────────────────────────

// ReferenceRepository implementa repository.ReferenceRepository.
type ReferenceRepository struct{ c *Client }

func NewReferenceRepository(c *Client) *ReferenceRepository { return &ReferenceRepository{c: c} }

func (r *ReferenceRepository) refs(ctx context.Context, path string) ([]*entity.Ref, error) {
	wires, err := listAll[refWire](ctx, r.c, path, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Ref, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toRef())
	}
	return out, nil
}

func (r *ReferenceRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	refs, err := r.refs(ctx, pathCategories)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(refs))
	for _, ref := range refs {
		out = append(out, entity.Category{ID: ref.ID, Name: ref.Name})
	}
	return out, nil
}

func (r *ReferenceRepository) Laboratories(ctx context.Context) ([]entity.Laboratory, error) {
	refs, err := r.refs(ctx, pathLaboratories)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Laboratory, 0, len(refs))
	for _, ref := range refs {
		out = append(out, entity.Laboratory{ID: ref.ID, Name: ref.Name})
	}
	return out, nil
}

func (r *ReferenceRepository) Careers(ctx context.Context) ([]entity.Career, error) {
	refs, err := r.refs(ctx, pathCareers)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Career, 0, len(refs))
	for _, ref := range refs {
		out = append(out, entity.Career{ID: ref.ID, Name: ref.Name})
	}
	return out, nil
}
