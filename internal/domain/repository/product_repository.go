package repository

import (
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/paginate"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create asigna un ID único, añade el producto y persiste.
	Create(product *entity.Product) error
	// GetByID devuelve el producto o nil si no existe.
	GetByID(id string) (*entity.Product, error)
	// SearchByName busca por subcadena del nombre, sin distinguir
	// mayúsculas. Solo se consulta el nombre, no modelo ni categoría.
	SearchByName(keyword string) ([]*entity.Product, error)
	// List pagina el catálogo completo en orden de archivo.
	List(pageNumber int) (paginate.Page[*entity.Product], error)
	// Delete elimina por ID. domain.ErrNotFound si no existe.
	Delete(id string) error
	// DeleteAll vacía el catálogo y persiste la colección vacía.
	DeleteAll() error
}
