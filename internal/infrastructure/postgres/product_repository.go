package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, precio, stock, descripcion, status, categoria_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO producto (nombre, precio, stock, descripcion, status, categoria_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Precio, p.Stock, p.Descripcion, p.Status, p.CategoriaID,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("La categoría asociada no existe.")
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE id = $1`
	return r.getOne(ctx, "get producto", query, id)
}

// GetByNombre obtiene un producto por nombre exacto.
func (r *ProductRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE nombre = $1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, "get producto by nombre", query, nombre)
}

// FindByNombre busca con ILIKE y devuelve el primero por id.
func (r *ProductRepo) FindByNombre(ctx context.Context, pattern string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE nombre ILIKE $1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, "find producto by nombre", query, pattern)
}

// ListActive lista los productos con status = true.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE status = TRUE ORDER BY id`
	return r.list(ctx, "list productos", query)
}

// ListActiveByCategory lista los productos activos de una categoría.
func (r *ProductRepo) ListActiveByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE categoria_id = $1 AND status = TRUE ORDER BY id`
	return r.list(ctx, "list productos by categoria", query, categoryID)
}

// Update reescribe los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE producto SET nombre = $2, precio = $3, stock = $4, descripcion = $5, categoria_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Precio, p.Stock, p.Descripcion, p.CategoriaID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("La categoría asociada no existe.")
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SetStatus cambia solo el status del producto.
func (r *ProductRepo) SetStatus(ctx context.Context, id int64, status bool) error {
	_, err := r.q.Exec(ctx, `UPDATE producto SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update producto status: %w", err)
	}
	return nil
}

// SetStatusByCategory propaga el status a todos los productos de la categoría.
func (r *ProductRepo) SetStatusByCategory(ctx context.Context, categoryID int64, status bool) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE producto SET status = $2 WHERE categoria_id = $1`, categoryID, status)
	if err != nil {
		return 0, fmt.Errorf("update productos status by categoria: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DecrementStock resta amount solo si alcanza; la condición va en el WHERE.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, amount int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE producto SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, amount,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *ProductRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Nombre, &p.Precio, &p.Stock, &p.Descripcion, &p.Status, &p.CategoriaID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Precio, &p.Stock, &p.Descripcion, &p.Status, &p.CategoriaID); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
