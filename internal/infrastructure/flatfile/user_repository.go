package flatfile

import (
	"fmt"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
	"github.com/jhoicas/Tienda-api/pkg/paginate"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre archivo plano.
// Es dueño exclusivo de su colección en memoria; el archivo es una foto
// de la última reescritura exitosa. Toda mutación construye la colección
// nueva, la persiste y solo entonces la adopta, de modo que un fallo de
// escritura deja memoria y archivo como estaban.
type UserRepo struct {
	mu    sync.RWMutex
	store *Store[entity.User]
	items []entity.User
}

// NewUserRepository carga el archivo de usuarios y construye el
// repositorio. El archivo ausente equivale a una colección vacía.
func NewUserRepository(path string, log *logger.Logger) (*UserRepo, error) {
	st := NewStore[entity.User](path, userCodec{}, log)
	items, err := st.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	return &UserRepo{store: st, items: items}, nil
}

// Create añade el usuario y persiste. Asigna un ID u_+10 dígitos si el
// usuario no trae uno. Devuelve domain.ErrDuplicate si el nombre de
// usuario ya existe (comparación exacta).
func (r *UserRepo) Create(user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := user.Base().Name
	for _, u := range r.items {
		if u.Base().Name == name {
			return domain.ErrDuplicate
		}
	}

	if user.Base().ID == "" {
		user.Base().ID = r.uniqueID()
	}

	next := append(cloneSlice(r.items), user)
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir usuarios: %w", err)
	}
	r.items = next
	return nil
}

// FindByUsername devuelve una copia del usuario o nil si no existe.
func (r *UserRepo) FindByUsername(name string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Base().Name == name {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetByID devuelve una copia del usuario o nil si no existe.
func (r *UserRepo) GetByID(id string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Base().ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario con el mismo ID y persiste.
func (r *UserRepo) Update(user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, u := range r.items {
		if u.Base().ID == user.Base().ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	next := cloneSlice(r.items)
	next[idx] = user
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir usuarios: %w", err)
	}
	r.items = next
	return nil
}

// ListCustomers filtra los clientes en orden de registro y pagina.
func (r *UserRepo) ListCustomers(pageNumber int) (paginate.Page[*entity.Customer], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var customers []*entity.Customer
	for _, u := range r.items {
		if c, ok := u.(*entity.Customer); ok {
			clone := *c
			customers = append(customers, &clone)
		}
	}
	return paginate.Paginate(customers, pageNumber, paginate.DefaultPageSize), nil
}

// DeleteCustomer elimina un cliente por ID y persiste. Un ID de admin no
// se borra por esta vía.
func (r *UserRepo) DeleteCustomer(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, u := range r.items {
		if _, ok := u.(*entity.Customer); ok && u.Base().ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	next := append(cloneSlice(r.items[:idx]), r.items[idx+1:]...)
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir usuarios: %w", err)
	}
	r.items = next
	return nil
}

// DeleteAllCustomers conserva solo los admins y persiste.
func (r *UserRepo) DeleteAllCustomers() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next []entity.User
	for _, u := range r.items {
		if _, ok := u.(*entity.Admin); ok {
			next = append(next, u)
		}
	}
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir usuarios: %w", err)
	}
	r.items = next
	return nil
}

// uniqueID sortea IDs hasta no chocar con la colección. Llamar con el
// lock tomado.
func (r *UserRepo) uniqueID() string {
	for {
		id := randomID("u_", userIDDigits)
		taken := false
		for _, u := range r.items {
			if u.Base().ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func cloneUser(u entity.User) entity.User {
	switch v := u.(type) {
	case *entity.Admin:
		clone := *v
		return &clone
	case *entity.Customer:
		clone := *v
		return &clone
	default:
		return u
	}
}
