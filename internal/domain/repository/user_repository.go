package repository

import (
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/paginate"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las implementaciones asignan el ID en Create y serializan sus propias
// mutaciones; toda operación que muta termina con una reescritura
// completa del recurso de respaldo.
type UserRepository interface {
	// Create asigna un ID único, añade el usuario y persiste. Devuelve
	// domain.ErrDuplicate si el nombre de usuario ya existe (comparación
	// exacta, sensible a mayúsculas).
	Create(user entity.User) error
	// FindByUsername devuelve el usuario o nil si no existe.
	FindByUsername(name string) (entity.User, error)
	// GetByID devuelve el usuario o nil si no existe.
	GetByID(id string) (entity.User, error)
	// Update reemplaza el usuario con el mismo ID y persiste. Devuelve
	// domain.ErrNotFound si el ID no está en la colección.
	Update(user entity.User) error
	// ListCustomers pagina solo los clientes, en orden de registro.
	ListCustomers(pageNumber int) (paginate.Page[*entity.Customer], error)
	// DeleteCustomer elimina un cliente por ID. domain.ErrNotFound si no existe.
	DeleteCustomer(id string) error
	// DeleteAllCustomers elimina todos los clientes conservando los admins.
	DeleteAllCustomers() error
}
