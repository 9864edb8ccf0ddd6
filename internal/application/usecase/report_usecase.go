package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CatalogPDF resultado del reporte: bytes del PDF y nombre sugerido del archivo.
type CatalogPDF struct {
	Filename string
	Content  []byte
}

// ReportUseCase genera reportes de solo lectura.
type ReportUseCase struct {
	tx  TxRunner
	pdf CatalogPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(tx TxRunner, pdf CatalogPDFGenerator) *ReportUseCase {
	return &ReportUseCase{tx: tx, pdf: pdf}
}

// CategoryCatalogPDF genera el catálogo de una categoría con sus productos activos.
func (uc *ReportUseCase) CategoryCatalogPDF(ctx context.Context, id int64) (*CatalogPDF, error) {
	var (
		category *entity.Category
		list     []*entity.Product
	)
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		var err error
		category, err = categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound(msgCategoryNotFound)
		}
		list, err = products.ListActiveByCategory(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	// el PDF se genera fuera de la transacción
	content, err := uc.pdf.GenerateCategoryCatalog(ctx, category, list)
	if err != nil {
		return nil, fmt.Errorf("generar catálogo: %w", err)
	}
	return &CatalogPDF{
		Filename: fmt.Sprintf("catalogo-categoria-%d.pdf", category.ID),
		Content:  content,
	}, nil
}
