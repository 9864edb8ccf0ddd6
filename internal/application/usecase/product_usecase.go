package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	msgProductNotFound       = "Producto no encontrado."
	msgCategoryMissing       = "La categoría asociada no existe."
	msgDuplicateProductName  = "Ya existe un producto con ese nombre."
	msgNegativeStock         = "El stock no puede ser negativo."
	msgNegativePrice         = "El precio no puede ser negativo."
	msgProductNameIsRequired = "El nombre del producto es obligatorio."
)

// ProductUseCase casos de uso de productos.
type ProductUseCase struct {
	tx TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx TxRunner) *ProductUseCase {
	return &ProductUseCase{tx: tx}
}

// Create crea un producto activo. Si trae categoría, debe existir y estar activa.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	nombre := entity.NormalizeName(in.Nombre)
	if nombre == "" {
		return nil, domain.Validation(msgProductNameIsRequired)
	}
	if err := checkNombreLen(nombre); err != nil {
		return nil, err
	}
	if err := checkDescripcion(in.Descripcion); err != nil {
		return nil, err
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		existing, err := products.GetByNombre(ctx, nombre)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict(msgDuplicateProductName)
		}
		if err := checkStock(in.Stock); err != nil {
			return err
		}
		if err := checkPrecio(in.Precio); err != nil {
			return err
		}
		if in.CategoriaID != nil {
			category, err := categories.GetByID(ctx, *in.CategoriaID)
			if err != nil {
				return err
			}
			if category == nil {
				return domain.NotFound(msgCategoryMissing)
			}
			if !category.Status {
				return domain.Conflict("La categoría asociada está inactiva.")
			}
		}
		product := &entity.Product{
			Nombre:      nombre,
			Precio:      in.Precio,
			Stock:       in.Stock,
			Descripcion: in.Descripcion,
			Status:      true,
			CategoriaID: in.CategoriaID,
		}
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive lista los productos activos. Sin productos activos devuelve ErrNotFound.
func (uc *ProductUseCase) ListActive(ctx context.Context) ([]dto.ProductResponse, error) {
	var items []dto.ProductResponse
	err := uc.tx.Run(ctx, func(_ repository.CategoryRepository, products repository.ProductRepository) error {
		list, err := products.ListActive(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return domain.NotFound("No hay productos activos registrados.")
		}
		items = toProductResponses(list)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID obtiene un producto con su categoría.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductWithCategoryResponse, error) {
	var out *dto.ProductWithCategoryResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(msgProductNotFound)
		}
		out, err = withCategory(ctx, categories, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByName busca un producto por nombre sin distinguir mayúsculas.
func (uc *ProductUseCase) GetByName(ctx context.Context, nombre string) (*dto.ProductWithCategoryResponse, error) {
	pattern := entity.NormalizeName(nombre)
	if pattern == "" {
		return nil, domain.NotFound(msgProductNotFound)
	}
	var out *dto.ProductWithCategoryResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.FindByNombre(ctx, pattern)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(msgProductNotFound)
		}
		out, err = withCategory(ctx, categories, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica solo los campos presentes. La categoría nueva solo se valida por existencia.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(msgProductNotFound)
		}

		nombre := product.Nombre
		if in.Nombre.Set {
			if in.Nombre.Null {
				return domain.Validation("El nombre del producto no puede ser nulo.")
			}
			nombre = entity.NormalizeName(in.Nombre.Value)
			if nombre == "" {
				return domain.Validation(msgProductNameIsRequired)
			}
			if err := checkNombreLen(nombre); err != nil {
				return err
			}
			if nombre != product.Nombre {
				existing, err := products.GetByNombre(ctx, nombre)
				if err != nil {
					return err
				}
				if existing != nil && existing.ID != product.ID {
					return domain.Conflict(msgDuplicateProductName)
				}
			}
		}
		if in.Stock.Set {
			if in.Stock.Null {
				return domain.Validation("El stock no puede ser nulo.")
			}
			if err := checkStock(in.Stock.Value); err != nil {
				return err
			}
		}
		if in.Precio.Set {
			if in.Precio.Null {
				return domain.Validation("El precio no puede ser nulo.")
			}
			if err := checkPrecio(in.Precio.Value); err != nil {
				return err
			}
		}
		if in.Descripcion.HasValue() {
			if err := checkDescripcion(&in.Descripcion.Value); err != nil {
				return err
			}
		}
		if in.CategoriaID.HasValue() {
			category, err := categories.GetByID(ctx, in.CategoriaID.Value)
			if err != nil {
				return err
			}
			if category == nil {
				return domain.NotFound(msgCategoryMissing)
			}
		}

		product.Nombre = nombre
		if in.Stock.Set {
			product.Stock = in.Stock.Value
		}
		if in.Precio.Set {
			product.Precio = in.Precio.Value
		}
		if in.Descripcion.Set {
			product.Descripcion = in.Descripcion.Ptr()
		}
		if in.CategoriaID.Set {
			product.CategoriaID = in.CategoriaID.Ptr()
		}
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate desactiva un producto activo.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(_ repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(msgProductNotFound)
		}
		if !product.Status {
			return domain.Conflict("El producto ya está inactivo.")
		}
		if err := products.SetStatus(ctx, id, false); err != nil {
			return err
		}
		product.Status = false
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Activate activa un producto inactivo cuya categoría (si existe) esté activa.
func (uc *ProductUseCase) Activate(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(msgProductNotFound)
		}
		if product.Status {
			return domain.Conflict("El producto ya está activo.")
		}
		if product.HasCategory() {
			category, err := categories.GetByID(ctx, *product.CategoriaID)
			if err != nil {
				return err
			}
			if category != nil && !category.Status {
				return domain.Conflict("No se puede activar el producto: la categoría asociada está inactiva.")
			}
		}
		if err := products.SetStatus(ctx, id, true); err != nil {
			return err
		}
		product.Status = true
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecrementStock resta cantidad del stock de un producto activo.
func (uc *ProductUseCase) DecrementStock(ctx context.Context, id int64, cantidad int) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(_ repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound(msgProductNotFound)
		}
		if !product.Status {
			return domain.Conflict("El producto está inactivo.")
		}
		if cantidad <= 0 {
			return domain.Validation("La cantidad a restar debe ser mayor que cero.")
		}
		if product.Stock-cantidad < 0 {
			return insufficientStock(product.Stock)
		}
		ok, err := products.DecrementStock(ctx, id, cantidad)
		if err != nil {
			return err
		}
		if !ok {
			// otra petición consumió el stock entre la lectura y la escritura
			current, err := products.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if current == nil {
				return domain.NotFound(msgProductNotFound)
			}
			return insufficientStock(current.Stock)
		}
		product.Stock -= cantidad
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func insufficientStock(current int) error {
	return domain.Conflict("Stock insuficiente. Stock actual: %d.", current)
}

// withCategory adjunta la categoría completa del producto, activa o no.
func withCategory(ctx context.Context, categories repository.CategoryRepository, product *entity.Product) (*dto.ProductWithCategoryResponse, error) {
	out := &dto.ProductWithCategoryResponse{ProductResponse: *toProductResponse(product)}
	if !product.HasCategory() {
		return out, nil
	}
	category, err := categories.GetByID(ctx, *product.CategoriaID)
	if err != nil {
		return nil, err
	}
	out.Categoria = toCategoryResponse(category)
	return out, nil
}
