package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// GetByNombre busca por igualdad exacta (sensible a mayúsculas).
	GetByNombre(ctx context.Context, nombre string) (*entity.Category, error)
	// FindByNombre busca por patrón sin distinguir mayúsculas; devuelve la primera por id.
	FindByNombre(ctx context.Context, pattern string) (*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	SetStatus(ctx context.Context, id int64, status bool) error
}
