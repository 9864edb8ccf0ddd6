package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func seedCategory(t *testing.T, repo *CategoryRepo, nombre string, status bool) *entity.Category {
	t.Helper()
	c := &entity.Category{Nombre: nombre, Status: true}
	require.NoError(t, repo.Create(context.Background(), c))
	if !status {
		require.NoError(t, repo.SetStatus(context.Background(), c.ID, false))
		c.Status = false
	}
	return c
}

func TestCategoryRepo_CRUD(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	desc := "frías y calientes"
	bebidas := &entity.Category{Nombre: "Bebidas", Descripcion: &desc, Status: true}
	require.NoError(t, repo.Create(ctx, bebidas))
	assert.Equal(t, int64(1), bebidas.ID)

	err := repo.Create(ctx, &entity.Category{Nombre: "Bebidas", Status: true})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetByID(ctx, bebidas.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Descripcion)
	assert.Equal(t, desc, *got.Descripcion)
	assert.True(t, got.Status)

	missing, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	exact, err := repo.GetByNombre(ctx, "bebidas")
	require.NoError(t, err)
	assert.Nil(t, exact, "igualdad exacta distingue mayúsculas")

	found, err := repo.FindByNombre(ctx, "BEBIDAS")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, bebidas.ID, found.ID)

	byPattern, err := repo.FindByNombre(ctx, "beb%")
	require.NoError(t, err)
	require.NotNil(t, byPattern)

	got.Nombre = "Refrescos"
	got.Descripcion = nil
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, bebidas.ID)
	require.NoError(t, err)
	assert.Equal(t, "Refrescos", got.Nombre)
	assert.Nil(t, got.Descripcion)

	seedCategory(t, repo, "Lácteos", false)
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Refrescos", active[0].Nombre)
}

func TestProductRepo_CRUDYCascada(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cats := NewCategoryRepository(db)
	repo := NewProductRepository(db)

	bebidas := seedCategory(t, cats, "Bebidas", true)
	otra := seedCategory(t, cats, "Lácteos", true)

	cola := &entity.Product{Nombre: "Cola", Precio: decimal.RequireFromString("10.50"), Stock: 5, Status: true, CategoriaID: &bebidas.ID}
	agua := &entity.Product{Nombre: "Agua", Precio: decimal.NewFromInt(3), Stock: 2, Status: false, CategoriaID: &bebidas.ID}
	leche := &entity.Product{Nombre: "Leche", Precio: decimal.NewFromInt(4), Stock: 1, Status: true, CategoriaID: &otra.ID}
	suelto := &entity.Product{Nombre: "Bolsa", Precio: decimal.Zero, Status: true}
	for _, p := range []*entity.Product{cola, agua, leche, suelto} {
		require.NoError(t, repo.Create(ctx, p))
	}

	got, err := repo.GetByID(ctx, cola.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("10.5").Equal(got.Precio), "precio %s", got.Precio)
	require.NotNil(t, got.CategoriaID)
	assert.Equal(t, bebidas.ID, *got.CategoriaID)

	noCat, err := repo.GetByID(ctx, suelto.ID)
	require.NoError(t, err)
	assert.Nil(t, noCat.CategoriaID)

	byCat, err := repo.ListActiveByCategory(ctx, bebidas.ID)
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "Cola", byCat[0].Nombre)

	n, err := repo.SetStatusByCategory(ctx, bebidas.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "afecta a todos los productos de la categoría")

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Leche", active[0].Nombre)
	assert.Equal(t, "Bolsa", active[1].Nombre)

	n, err = repo.SetStatusByCategory(ctx, bebidas.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	got, err = repo.GetByID(ctx, agua.ID)
	require.NoError(t, err)
	assert.True(t, got.Status, "reactivación sin importar estado previo")
}

func TestProductRepo_ForeignKey(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ghost := int64(404)

	err := repo.Create(context.Background(), &entity.Product{Nombre: "Fantasma", Status: true, CategoriaID: &ghost})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_UpdateYDecrement(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	p := &entity.Product{Nombre: "Cola", Precio: decimal.NewFromInt(10), Stock: 5, Status: true}
	require.NoError(t, repo.Create(ctx, p))

	desc := "light"
	p.Descripcion = &desc
	p.Stock = 7
	require.NoError(t, repo.Update(ctx, p))

	ok, err := repo.DecrementStock(ctx, p.ID, 8)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DecrementStock(ctx, p.ID, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
	require.NotNil(t, got.Descripcion)
	assert.Equal(t, "light", *got.Descripcion)

	dup, err := repo.GetByNombre(ctx, "Cola")
	require.NoError(t, err)
	require.NotNil(t, dup)
	assert.Equal(t, p.ID, dup.ID)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	db := openTestDB(t)
	runner := NewTxRunner(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := runner.Run(ctx, func(cats repository.CategoryRepository, _ repository.ProductRepository) error {
		require.NoError(t, cats.Create(ctx, &entity.Category{Nombre: "Temporal", Status: true}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	c, err := NewCategoryRepository(db).GetByNombre(ctx, "Temporal")
	require.NoError(t, err)
	assert.Nil(t, c)

	err = runner.Run(ctx, func(cats repository.CategoryRepository, _ repository.ProductRepository) error {
		return cats.Create(ctx, &entity.Category{Nombre: "Persistida", Status: true})
	})
	require.NoError(t, err)
	c, err = NewCategoryRepository(db).GetByNombre(ctx, "Persistida")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", dsn(":memory:"))
	assert.Equal(t, "file:tienda.sqlite3?_foreign_keys=on&_busy_timeout=5000", dsn("tienda.sqlite3"))
	assert.Equal(t, "file:data/t.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", dsn("file:data/t.db?mode=rwc"))
}
