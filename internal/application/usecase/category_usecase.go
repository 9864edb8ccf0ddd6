package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const msgCategoryNotFound = "Categoría no encontrada."

// CategoryUseCase casos de uso de categorías. Activar/desactivar se propaga a sus productos.
type CategoryUseCase struct {
	tx TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{tx: tx}
}

// Create crea una categoría activa. El nombre debe ser único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	nombre := entity.NormalizeName(in.Nombre)
	if nombre == "" {
		return nil, domain.Validation("El nombre de la categoría es obligatorio.")
	}
	if err := checkNombreLen(nombre); err != nil {
		return nil, err
	}
	if err := checkDescripcion(in.Descripcion); err != nil {
		return nil, err
	}
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		existing, err := categories.GetByNombre(ctx, nombre)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict("Ya existe una categoría con ese nombre.")
		}
		category := &entity.Category{
			Nombre:      nombre,
			Descripcion: in.Descripcion,
			Status:      true,
		}
		if err := categories.Create(ctx, category); err != nil {
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive lista las categorías activas. Devuelve lista vacía si no hay ninguna.
func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	items := []dto.CategoryResponse{}
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		list, err := categories.ListActive(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			items = append(items, *toCategoryResponse(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID obtiene una categoría con sus productos activos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryWithProductsResponse, error) {
	var out *dto.CategoryWithProductsResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound(msgCategoryNotFound)
		}
		out, err = withActiveProducts(ctx, products, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByName busca una categoría por nombre sin distinguir mayúsculas (semántica de patrón del store).
func (uc *CategoryUseCase) GetByName(ctx context.Context, nombre string) (*dto.CategoryWithProductsResponse, error) {
	pattern := entity.NormalizeName(nombre)
	if pattern == "" {
		return nil, domain.NotFound(msgCategoryNotFound)
	}
	var out *dto.CategoryWithProductsResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.FindByNombre(ctx, pattern)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound(msgCategoryNotFound)
		}
		out, err = withActiveProducts(ctx, products, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound(msgCategoryNotFound)
		}
		if in.Nombre.Set {
			if in.Nombre.Null {
				return domain.Validation("El nombre de la categoría no puede ser nulo.")
			}
			nombre := entity.NormalizeName(in.Nombre.Value)
			if nombre == "" {
				return domain.Validation("El nombre de la categoría es obligatorio.")
			}
			if err := checkNombreLen(nombre); err != nil {
				return err
			}
			if nombre != category.Nombre {
				existing, err := categories.GetByNombre(ctx, nombre)
				if err != nil {
					return err
				}
				if existing != nil && existing.ID != category.ID {
					return domain.Conflict("Ya existe una categoría con ese nombre.")
				}
			}
			category.Nombre = nombre
		}
		if in.Descripcion.HasValue() {
			if err := checkDescripcion(&in.Descripcion.Value); err != nil {
				return err
			}
		}
		if in.Descripcion.Set {
			category.Descripcion = in.Descripcion.Ptr()
		}
		if err := categories.Update(ctx, category); err != nil {
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate desactiva la categoría y todos sus productos.
// Desactivar una categoría ya inactiva es un conflicto, igual que con productos.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	return uc.setStatus(ctx, id, false)
}

// Activate activa la categoría y todos sus productos.
func (uc *CategoryUseCase) Activate(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	return uc.setStatus(ctx, id, true)
}

func (uc *CategoryUseCase) setStatus(ctx context.Context, id int64, status bool) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound(msgCategoryNotFound)
		}
		if category.Status == status {
			if status {
				return domain.Conflict("La categoría ya está activa.")
			}
			return domain.Conflict("La categoría ya está inactiva.")
		}
		if err := categories.SetStatus(ctx, id, status); err != nil {
			return err
		}
		affected, err := products.SetStatusByCategory(ctx, id, status)
		if err != nil {
			return err
		}
		log.Debug().
			Int64("categoria_id", id).
			Bool("status", status).
			Int64("productos", affected).
			Msg("estado propagado a productos")
		category.Status = status
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withActiveProducts adjunta los productos activos de la categoría.
func withActiveProducts(ctx context.Context, products repository.ProductRepository, category *entity.Category) (*dto.CategoryWithProductsResponse, error) {
	list, err := products.ListActiveByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryWithProductsResponse{
		CategoryResponse: *toCategoryResponse(category),
		Productos:        toProductResponses(list),
	}, nil
}
