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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre archivo
// plano. Las órdenes son inmutables una vez creadas: no hay Update.
type OrderRepo struct {
	mu    sync.RWMutex
	store *Store[*entity.Order]
	items []*entity.Order
}

// NewOrderRepository carga las órdenes y construye el repositorio.
func NewOrderRepository(path string, log *logger.Logger) (*OrderRepo, error) {
	st := NewStore[*entity.Order](path, orderCodec{}, log)
	items, err := st.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cargar órdenes: %w", err)
	}
	return &OrderRepo{store: st, items: items}, nil
}

// Create añade la orden y persiste. Asigna un ID o_+5 dígitos si no trae
// uno. UserID y ProductID se aceptan sin verificar contra los otros
// repositorios.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = r.uniqueID()
	}

	next := append(cloneSlice(r.items), order)
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir órdenes: %w", err)
	}
	r.items = next
	return nil
}

// ListByUser filtra las órdenes del usuario conservando el orden de
// archivo y pagina el resultado filtrado.
func (r *OrderRepo) ListByUser(userID string, pageNumber int) (paginate.Page[*entity.Order], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var mine []*entity.Order
	for _, o := range r.items {
		if o.UserID == userID {
			clone := *o
			mine = append(mine, &clone)
		}
	}
	return paginate.Paginate(mine, pageNumber, paginate.DefaultPageSize), nil
}

// ListAll pagina todas las órdenes (uso administrativo).
func (r *OrderRepo) ListAll(pageNumber int) (paginate.Page[*entity.Order], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clones := make([]*entity.Order, len(r.items))
	for i, o := range r.items {
		clone := *o
		clones[i] = &clone
	}
	return paginate.Paginate(clones, pageNumber, paginate.DefaultPageSize), nil
}

// Delete elimina por ID y persiste.
func (r *OrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, o := range r.items {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	next := append(cloneSlice(r.items[:idx]), r.items[idx+1:]...)
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir órdenes: %w", err)
	}
	r.items = next
	return nil
}

// DeleteAll elimina todas las órdenes y persiste la colección vacía.
func (r *OrderRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.SaveAll(nil); err != nil {
		return fmt.Errorf("persistir órdenes: %w", err)
	}
	r.items = nil
	return nil
}

func (r *OrderRepo) uniqueID() string {
	for {
		id := randomID("o_", orderIDDigits)
		taken := false
		for _, o := range r.items {
			if o.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
