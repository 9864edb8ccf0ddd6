package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Las reglas de negocio
// (stock/precio negativos, categoría) las valida el caso de uso.
type CreateProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,max=200"`
	Precio      decimal.Decimal `json:"precio" swaggertype:"number"`
	Stock       int             `json:"stock"`
	Descripcion *string         `json:"descripcion" validate:"omitempty,max=1000"`
	CategoriaID *int64          `json:"categoria_id"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Nombre      Optional[string]          `json:"nombre" swaggertype:"string"`
	Precio      Optional[decimal.Decimal] `json:"precio" swaggertype:"number"`
	Stock       Optional[int]             `json:"stock" swaggertype:"integer"`
	Descripcion Optional[string]          `json:"descripcion" swaggertype:"string"`
	CategoriaID Optional[int64]           `json:"categoria_id" swaggertype:"integer"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Descripcion *string `json:"descripcion"`
	Status      bool    `json:"status"`
	CategoriaID *int64  `json:"categoria_id"`
}

// ProductWithCategoryResponse producto con su categoría completa (activa o no).
type ProductWithCategoryResponse struct {
	ProductResponse
	Categoria *CategoryResponse `json:"categoria"`
}
