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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, nombre, descripcion, status`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `INSERT INTO categoria (nombre, descripcion, status) VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Nombre, c.Descripcion, c.Status).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Ya existe una categoría con ese nombre.")
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categoria WHERE id = $1`
	return r.getOne(ctx, "get categoria", query, id)
}

// GetByNombre obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categoria WHERE nombre = $1`
	return r.getOne(ctx, "get categoria by nombre", query, nombre)
}

// FindByNombre busca con ILIKE (admite % y _) y devuelve la primera por id.
func (r *CategoryRepo) FindByNombre(ctx context.Context, pattern string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categoria WHERE nombre ILIKE $1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, "find categoria by nombre", query, pattern)
}

// ListActive lista las categorías con status = true.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categoria WHERE status = TRUE ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Status); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categoria SET nombre = $2, descripcion = $3 WHERE id = $1`,
		c.ID, c.Nombre, c.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Ya existe una categoría con ese nombre.")
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// SetStatus cambia solo el status de la categoría.
func (r *CategoryRepo) SetStatus(ctx context.Context, id int64, status bool) error {
	_, err := r.q.Exec(ctx, `UPDATE categoria SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update categoria status: %w", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
