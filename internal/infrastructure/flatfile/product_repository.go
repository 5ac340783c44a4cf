package flatfile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
	"github.com/jhoicas/Tienda-api/pkg/paginate"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre archivo
// plano. Mismo modelo que UserRepo: mutar copia, persistir, adoptar.
type ProductRepo struct {
	mu    sync.RWMutex
	store *Store[*entity.Product]
	items []*entity.Product
}

// NewProductRepository carga el catálogo y construye el repositorio.
func NewProductRepository(path string, log *logger.Logger) (*ProductRepo, error) {
	st := NewStore[*entity.Product](path, productCodec{}, log)
	items, err := st.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	return &ProductRepo{store: st, items: items}, nil
}

// Create añade el producto y persiste. Asigna un ID p_+5 dígitos si no
// trae uno.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = r.uniqueID()
	}

	next := append(cloneSlice(r.items), product)
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir productos: %w", err)
	}
	r.items = next
	return nil
}

// GetByID devuelve una copia del producto o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// SearchByName devuelve los productos cuyo nombre contiene keyword, sin
// distinguir mayúsculas. Solo se compara el nombre.
func (r *ProductRepo) SearchByName(keyword string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kw := strings.ToLower(keyword)
	var out []*entity.Product
	for _, p := range r.items {
		if strings.Contains(strings.ToLower(p.Name), kw) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

// List pagina el catálogo en orden de archivo.
func (r *ProductRepo) List(pageNumber int) (paginate.Page[*entity.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clones := make([]*entity.Product, len(r.items))
	for i, p := range r.items {
		clone := *p
		clones[i] = &clone
	}
	return paginate.Paginate(clones, pageNumber, paginate.DefaultPageSize), nil
}

// Delete elimina por ID y persiste.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.items {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	next := append(cloneSlice(r.items[:idx]), r.items[idx+1:]...)
	if err := r.store.SaveAll(next); err != nil {
		return fmt.Errorf("persistir productos: %w", err)
	}
	r.items = next
	return nil
}

// DeleteAll vacía el catálogo y persiste la colección vacía.
func (r *ProductRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.SaveAll(nil); err != nil {
		return fmt.Errorf("persistir productos: %w", err)
	}
	r.items = nil
	return nil
}

func (r *ProductRepo) uniqueID() string {
	for {
		id := randomID("p_", productIDDigits)
		taken := false
		for _, p := range r.items {
			if p.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
