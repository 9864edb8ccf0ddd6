package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso. Cada caso de uso abre
// exactamente una sesión por llamada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}

// CatalogPDFGenerator genera el catálogo en PDF de una categoría.
type CatalogPDFGenerator interface {
	GenerateCategoryCatalog(ctx context.Context, category *entity.Category, products []*entity.Product) ([]byte, error)
}
