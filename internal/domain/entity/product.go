package entity

import "github.com/shopspring/decimal"

// Product representa un producto vendible que pertenece como mucho a una categoría.
type Product struct {
	ID          int64
	Nombre      string
	Precio      decimal.Decimal // >= 0
	Stock       int             // nunca negativo
	Descripcion *string
	Status      bool
	CategoriaID *int64 // nil si no tiene categoría
}

// HasCategory indica si el producto referencia una categoría.
func (p *Product) HasCategory() bool {
	return p.CategoriaID != nil
}
