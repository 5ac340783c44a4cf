package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para añadir un producto al catálogo.
// CurrentPrice llega ya con el descuento aplicado; RawPrice y Discount
// se guardan tal cual, sin recalcular.
type CreateProductRequest struct {
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	Name         string          `json:"name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	RawPrice     decimal.Decimal `json:"raw_price"`
	Discount     decimal.Decimal `json:"discount"`
	LikesCount   int             `json:"likes_count"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	Name         string          `json:"name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	RawPrice     decimal.Decimal `json:"raw_price"`
	Discount     decimal.Decimal `json:"discount"`
	LikesCount   int             `json:"likes_count"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
