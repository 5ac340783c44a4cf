package dto

// CreateOrderRequest entrada para crear una orden. El producto no se
// verifica contra el catálogo: una referencia rota se acepta.
type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	OrderedAt string `json:"ordered_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
