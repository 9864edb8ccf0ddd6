package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Product, error)
	FindByNombre(ctx context.Context, pattern string) (*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListActiveByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SetStatus(ctx context.Context, id int64, status bool) error
	// SetStatusByCategory propaga status a todos los productos de la categoría, sin importar su estado previo.
	SetStatusByCategory(ctx context.Context, categoryID int64, status bool) (int64, error)
	// DecrementStock resta amount solo si stock >= amount. Devuelve false si no alcanzó.
	DecrementStock(ctx context.Context, id int64, amount int) (bool, error)
}
