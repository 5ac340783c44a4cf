package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// CurrentPrice ya viene con el descuento aplicado; RawPrice y Discount se
// guardan tal cual se reciben, sin validación cruzada entre los tres.
type Product struct {
	ID           string
	Model        string
	Category     string
	Name         string
	CurrentPrice decimal.Decimal
	RawPrice     decimal.Decimal
	Discount     decimal.Decimal
	LikesCount   int
}
