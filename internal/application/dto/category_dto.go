package dto

// CreateCategoryRequest entrada para crear una categoría. Sin id ni status: los asigna el servidor.
type CreateCategoryRequest struct {
	Nombre      string  `json:"nombre" validate:"required,max=200"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=1000"`
}

// UpdateCategoryRequest actualización parcial: solo se aplican los campos presentes.
type UpdateCategoryRequest struct {
	Nombre      Optional[string] `json:"nombre" swaggertype:"string"`
	Descripcion Optional[string] `json:"descripcion" swaggertype:"string"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Status      bool    `json:"status"`
}

// CategoryWithProductsResponse categoría con sus productos activos.
type CategoryWithProductsResponse struct {
	CategoryResponse
	Productos []ProductResponse `json:"productos"`
}
