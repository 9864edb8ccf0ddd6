package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ── Store en memoria con semántica de transacción (rollback por snapshot) ─────

type memStore struct {
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	nextCat    int64
	nextProd   int64
	runs       int

	// onDecrement simula una escritura concurrente justo antes del UPDATE condicionado.
	onDecrement func(s *memStore, id int64)
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
	}
}

func (s *memStore) Run(_ context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	s.runs++
	cats := make(map[int64]entity.Category, len(s.categories))
	for k, v := range s.categories {
		cats[k] = v
	}
	prods := make(map[int64]entity.Product, len(s.products))
	for k, v := range s.products {
		prods[k] = v
	}
	nextCat, nextProd := s.nextCat, s.nextProd

	if err := fn(&memCategoryRepo{s: s}, &memProductRepo{s: s}); err != nil {
		s.categories, s.products = cats, prods
		s.nextCat, s.nextProd = nextCat, nextProd
		return err
	}
	return nil
}

func (s *memStore) product(id int64) entity.Product   { return s.products[id] }
func (s *memStore) category(id int64) entity.Category { return s.categories[id] }

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.nextCat++
	c.ID = r.s.nextCat
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCategoryRepo) GetByNombre(_ context.Context, nombre string) (*entity.Category, error) {
	for _, id := range sortedKeys(r.s.categories) {
		if c := r.s.categories[id]; c.Nombre == nombre {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindByNombre(_ context.Context, pattern string) (*entity.Category, error) {
	for _, id := range sortedKeys(r.s.categories) {
		if c := r.s.categories[id]; strings.EqualFold(c.Nombre, pattern) {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, id := range sortedKeys(r.s.categories) {
		if c := r.s.categories[id]; c.Status {
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) SetStatus(_ context.Context, id int64, status bool) error {
	c := r.s.categories[id]
	c.Status = status
	r.s.categories[id] = c
	return nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.nextProd++
	p.ID = r.s.nextProd
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetByNombre(_ context.Context, nombre string) (*entity.Product, error) {
	for _, id := range sortedKeys(r.s.products) {
		if p := r.s.products[id]; p.Nombre == nombre {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) FindByNombre(_ context.Context, pattern string) (*entity.Product, error) {
	for _, id := range sortedKeys(r.s.products) {
		if p := r.s.products[id]; strings.EqualFold(p.Nombre, pattern) {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range sortedKeys(r.s.products) {
		if p := r.s.products[id]; p.Status {
			list = append(list, &p)
		}
	}
	return list, nil
}

func (r *memProductRepo) ListActiveByCategory(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range sortedKeys(r.s.products) {
		p := r.s.products[id]
		if p.Status && p.CategoriaID != nil && *p.CategoriaID == categoryID {
			list = append(list, &p)
		}
	}
	return list, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) SetStatus(_ context.Context, id int64, status bool) error {
	p := r.s.products[id]
	p.Status = status
	r.s.products[id] = p
	return nil
}

func (r *memProductRepo) SetStatusByCategory(_ context.Context, categoryID int64, status bool) (int64, error) {
	var n int64
	for id, p := range r.s.products {
		if p.CategoriaID != nil && *p.CategoriaID == categoryID {
			p.Status = status
			r.s.products[id] = p
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id int64, amount int) (bool, error) {
	if r.s.onDecrement != nil {
		r.s.onDecrement(r.s, id)
	}
	p, ok := r.s.products[id]
	if !ok || p.Stock < amount {
		return false, nil
	}
	p.Stock -= amount
	r.s.products[id] = p
	return true, nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func ptr[T any](v T) *T { return &v }
