package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre GORM (db o tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	m := fromProduct(p)
	if err := r.db.WithContext(ctx).Omit("Categoria").Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.NotFound("La categoría asociada no existe.")
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	p.ID = m.ID
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id), "get producto")
}

func (r *ProductRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Product, error) {
	return r.first(r.db.WithContext(ctx).Where("nombre = ?", nombre), "get producto by nombre")
}

func (r *ProductRepo) FindByNombre(ctx context.Context, pattern string) (*entity.Product, error) {
	return r.first(r.db.WithContext(ctx).Where("nombre LIKE ?", pattern), "find producto by nombre")
}

func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", true), "list productos")
}

func (r *ProductRepo) ListActiveByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	q := r.db.WithContext(ctx).Where("categoria_id = ? AND status = ?", categoryID, true)
	return r.list(q, "list productos by categoria")
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	err := r.db.WithContext(ctx).Model(&productoModel{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"nombre":       p.Nombre,
			"precio":       p.Precio,
			"stock":        p.Stock,
			"descripcion":  p.Descripcion,
			"categoria_id": p.CategoriaID,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.NotFound("La categoría asociada no existe.")
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) SetStatus(ctx context.Context, id int64, status bool) error {
	err := r.db.WithContext(ctx).Model(&productoModel{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update producto status: %w", err)
	}
	return nil
}

func (r *ProductRepo) SetStatusByCategory(ctx context.Context, categoryID int64, status bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&productoModel{}).Where("categoria_id = ?", categoryID).Update("status", status)
	if res.Error != nil {
		return 0, fmt.Errorf("update productos status by categoria: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, amount int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&productoModel{}).
		Where("id = ? AND stock >= ?", id, amount).
		Update("stock", gorm.Expr("stock - ?", amount))
	if res.Error != nil {
		return false, fmt.Errorf("decrement stock: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *ProductRepo) first(q *gorm.DB, op string) (*entity.Product, error) {
	var m productoModel
	if err := q.Order("id").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m.toEntity(), nil
}

func (r *ProductRepo) list(q *gorm.DB, op string) ([]*entity.Product, error) {
	var rows []productoModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}
