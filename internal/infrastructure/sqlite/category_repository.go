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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre GORM (db o tx).
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	m := fromCategory(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict("Ya existe una categoría con ese nombre.")
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	c.ID = m.ID
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id), "get categoria")
}

func (r *CategoryRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("nombre = ?", nombre), "get categoria by nombre")
}

// FindByNombre usa LIKE, que en SQLite no distingue mayúsculas para ASCII.
func (r *CategoryRepo) FindByNombre(ctx context.Context, pattern string) (*entity.Category, error) {
	return r.first(r.db.WithContext(ctx).Where("nombre LIKE ?", pattern), "find categoria by nombre")
}

func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoriaModel
	if err := r.db.WithContext(ctx).Where("status = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	list := make([]*entity.Category, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	err := r.db.WithContext(ctx).Model(&categoriaModel{}).Where("id = ?", c.ID).
		Updates(map[string]any{"nombre": c.Nombre, "descripcion": c.Descripcion}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict("Ya existe una categoría con ese nombre.")
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

func (r *CategoryRepo) SetStatus(ctx context.Context, id int64, status bool) error {
	err := r.db.WithContext(ctx).Model(&categoriaModel{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update categoria status: %w", err)
	}
	return nil
}

func (r *CategoryRepo) first(q *gorm.DB, op string) (*entity.Category, error) {
	var m categoriaModel
	if err := q.Order("id").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m.toEntity(), nil
}
