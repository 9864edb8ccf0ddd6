package entity

// Category representa una categoría de productos.
// Status=false es el borrado lógico; nunca se elimina una fila.
type Category struct {
	ID          int64
	Nombre      string  // único entre todas las categorías
	Descripcion *string
	Status      bool
}
