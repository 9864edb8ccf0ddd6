package sqlite

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type categoriaModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Nombre      string `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Status      bool `gorm:"not null"`
}

func (categoriaModel) TableName() string { return "categoria" }

type productoModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Nombre      string          `gorm:"index;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Stock       int             `gorm:"not null"`
	Descripcion *string
	Status      bool            `gorm:"not null"`
	CategoriaID *int64          `gorm:"index"`
	Categoria   *categoriaModel `gorm:"foreignKey:CategoriaID"`
}

func (productoModel) TableName() string { return "producto" }

func fromCategory(c *entity.Category) categoriaModel {
	return categoriaModel{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion, Status: c.Status}
}

func (m categoriaModel) toEntity() *entity.Category {
	return &entity.Category{ID: m.ID, Nombre: m.Nombre, Descripcion: m.Descripcion, Status: m.Status}
}

func fromProduct(p *entity.Product) productoModel {
	return productoModel{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Descripcion: p.Descripcion,
		Status:      p.Status,
		CategoriaID: p.CategoriaID,
	}
}

func (m productoModel) toEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Precio:      m.Precio,
		Stock:       m.Stock,
		Descripcion: m.Descripcion,
		Status:      m.Status,
		CategoriaID: m.CategoriaID,
	}
}
