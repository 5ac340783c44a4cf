package repository

import (
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/paginate"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Las referencias UserID/ProductID no se validan contra los otros
// repositorios: una orden huérfana se acepta y se conserva.
type OrderRepository interface {
	// Create asigna un ID único, añade la orden y persiste.
	Create(order *entity.Order) error
	// ListByUser pagina las órdenes de un usuario: primero filtra por
	// UserID conservando el orden, luego pagina el resultado.
	ListByUser(userID string, pageNumber int) (paginate.Page[*entity.Order], error)
	// ListAll pagina todas las órdenes (uso administrativo).
	ListAll(pageNumber int) (paginate.Page[*entity.Order], error)
	// Delete elimina por ID. domain.ErrNotFound si no existe.
	Delete(id string) error
	// DeleteAll elimina todas las órdenes.
	DeleteAll() error
}
