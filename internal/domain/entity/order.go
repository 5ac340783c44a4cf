package entity

// Order representa una compra de un cliente. Inmutable una vez creada.
// UserID y ProductID son referencias sueltas: no se validan contra los
// repositorios de usuarios/productos y pueden quedar huérfanas.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	OrderedAt string // DD-MM-YYYY_HH:MM:SS
}
