package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0,00",
		"25000":   "25.000,00",
		"1234.5":  "1.234,50",
		"999":     "999,00",
		"1000000": "1.000.000,00",
		"-1500":   "-1.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]*entity.Product{
		{Precio: decimal.RequireFromString("10.50"), Stock: 2},
		{Precio: decimal.NewFromInt(3), Stock: 0},
	})
	assert.Equal(t, 2, s.Products)
	assert.Equal(t, 2, s.Units)
	assert.True(t, decimal.NewFromInt(21).Equal(s.Value))
}

func TestGenerateCategoryCatalog(t *testing.T) {
	g := NewMarotoCatalogGenerator()
	g.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	desc := "Refrescos y aguas"
	category := &entity.Category{ID: 1, Nombre: "Bebidas", Descripcion: &desc, Status: true}

	out, err := g.GenerateCategoryCatalog(context.Background(), category, []*entity.Product{
		{ID: 1, Nombre: "Cola", Precio: decimal.NewFromInt(10), Stock: 5, Status: true},
		{ID: 2, Nombre: "Agua", Precio: decimal.RequireFromString("2.50"), Stock: 12, Status: true},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")

	empty, err := g.GenerateCategoryCatalog(context.Background(), &entity.Category{ID: 2, Nombre: "Vacía"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
