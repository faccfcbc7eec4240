// Package repositorytest implementaciones en memoria de los puertos del gateway para tests.
package repositorytest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

func paginate[T any](all []T, p repository.Paging) *repository.Page[T] {
	p = p.Normalize()
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := len(all)
	if end-start > p.PerPage {
		end = start + p.PerPage
	}
	return &repository.Page[T]{
		Items:       all[start:end],
		CurrentPage: p.Page,
		LastPage:    repository.LastPageFor(len(all), p.PerPage),
		PerPage:     p.PerPage,
		Total:       len(all),
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Items repositorio de items en memoria. Err fuerza un error en todas las operaciones.
type Items struct {
	mu     sync.Mutex
	nextID int64
	Data   []*entity.Item
	Err    error
	// FailCode hace fallar Create para los códigos indicados.
	FailCode map[string]error
}

var _ repository.ItemRepository = (*Items)(nil)

func (r *Items) List(_ context.Context, f repository.ItemFilter) (*repository.Page[*entity.Item], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.Item
	for _, it := range r.Data {
		if f.State != "" && it.State != f.State {
			continue
		}
		if f.CategoryID != 0 && it.CategoryID != f.CategoryID {
			continue
		}
		if f.Search != "" && !contains(it.Code, f.Search) && !contains(it.Name, f.Search) {
			continue
		}
		out = append(out, it)
	}
	return paginate(out, f.Paging), nil
}

func (r *Items) ListAll(context.Context) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]*entity.Item(nil), r.Data...), nil
}

func (r *Items) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, it := range r.Data {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Items) Create(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if err := r.FailCode[item.Code]; err != nil {
		return err
	}
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.Data = append(r.Data, &cp)
	return nil
}

func (r *Items) Update(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, it := range r.Data {
		if it.ID == item.ID {
			cp := *item
			r.Data[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Items) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, it := range r.Data {
		if it.ID == id {
			r.Data = append(r.Data[:i], r.Data[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Codes códigos guardados, ordenados (útil para comparar importaciones concurrentes).
func (r *Items) Codes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Data))
	for _, it := range r.Data {
		out = append(out, it.Code)
	}
	sort.Strings(out)
	return out
}

// Consumables repositorio de consumibles en memoria.
type Consumables struct {
	mu     sync.Mutex
	nextID int64
	Data   []*entity.Consumable
	Err    error
	// FailName hace fallar Create para los nombres indicados.
	FailName map[string]error
}

var _ repository.ConsumableRepository = (*Consumables)(nil)

func (r *Consumables) ListAll(_ context.Context, f repository.ConsumableFilter) ([]*entity.Consumable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.Consumable
	for _, c := range r.Data {
		if f.CategoryID != 0 && c.CategoryID != f.CategoryID {
			continue
		}
		if f.Search != "" && !contains(c.Name, f.Search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *Consumables) GetByID(_ context.Context, id int64) (*entity.Consumable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, c := range r.Data {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Consumables) Create(_ context.Context, c *entity.Consumable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if err := r.FailName[c.Name]; err != nil {
		return err
	}
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.Data = append(r.Data, &cp)
	return nil
}

func (r *Consumables) Update(_ context.Context, c *entity.Consumable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, it := range r.Data {
		if it.ID == c.ID {
			cp := *c
			r.Data[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Consumables) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, c := range r.Data {
		if c.ID == id {
			r.Data = append(r.Data[:i], r.Data[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Movements historial de movimientos en memoria; Data se mantiene del más reciente al más antiguo.
type Movements struct {
	mu      sync.Mutex
	nextID  int64
	Data    []*entity.Movement
	Err     error
	Created int // llamadas exitosas a Create
}

var _ repository.MovementRepository = (*Movements)(nil)

func (r *Movements) List(_ context.Context, f repository.MovementFilter) (*repository.Page[*entity.Movement], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.Movement
	for _, m := range r.Data {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		out = append(out, m)
	}
	return paginate(out, f.Paging), nil
}

func (r *Movements) ListAll(context.Context) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append([]*entity.Movement(nil), r.Data...), nil
}

func (r *Movements) Create(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.Data = append([]*entity.Movement{&cp}, r.Data...)
	r.Created++
	return nil
}

// Users usuarios en memoria con contraseñas en claro (solo tests).
type Users struct {
	mu        sync.Mutex
	nextID    int64
	Data      []*entity.User
	Passwords map[int64]string
	Err       error
}

var _ repository.UserRepository = (*Users)(nil)

// Add agrega un usuario con su contraseña y devuelve el ID asignado.
func (r *Users) Add(u *entity.User, password string) int64 {
	_ = r.Create(context.Background(), u, password)
	return u.ID
}

func (r *Users) List(_ context.Context, f repository.UserFilter) (*repository.Page[*entity.User], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.User
	for _, u := range r.Data {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Search != "" && !contains(u.Name, f.Search) && !contains(u.Email, f.Search) {
			continue
		}
		out = append(out, u)
	}
	return paginate(out, f.Paging), nil
}

func (r *Users) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Data {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Users) Create(_ context.Context, u *entity.User, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.Data {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicate
		}
	}
	if r.Passwords == nil {
		r.Passwords = make(map[int64]string)
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.Data = append(r.Data, &cp)
	r.Passwords[u.ID] = password
	return nil
}

func (r *Users) Update(_ context.Context, u *entity.User, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, existing := range r.Data {
		if existing.ID == u.ID {
			cp := *u
			r.Data[i] = &cp
			if password != "" {
				r.Passwords[u.ID] = password
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Users) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, u := range r.Data {
		if u.ID == id {
			r.Data = append(r.Data[:i], r.Data[i+1:]...)
			delete(r.Passwords, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Users) Authenticate(_ context.Context, email, password string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Data {
		if strings.EqualFold(u.Email, email) && r.Passwords[u.ID] == password {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

func (r *Users) ChangePassword(_ context.Context, userID int64, current, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	pw, ok := r.Passwords[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if pw != current {
		return domain.Invalid("la contraseña actual no es correcta")
	}
	r.Passwords[userID] = next
	return nil
}

// References catálogos fijos.
type References struct {
	CategoryList   []entity.Category
	LaboratoryList []entity.Laboratory
	CareerList     []entity.Career
	Err            error
}

var _ repository.ReferenceRepository = (*References)(nil)

func (r *References) Categories(context.Context) ([]entity.Category, error) {
	return r.CategoryList, r.Err
}

func (r *References) Laboratories(context.Context) ([]entity.Laboratory, error) {
	return r.LaboratoryList, r.Err
}

func (r *References) Careers(context.Context) ([]entity.Career, error) {
	return r.CareerList, r.Err
}
