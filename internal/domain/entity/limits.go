package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Límites de los campos. Coinciden con el esquema de PostgreSQL:
// precio NUMERIC(14,2) y stock INTEGER.
const (
	MaxNombreLen      = 200
	MaxDescripcionLen = 1000
	PrecioScale       = 2
	MaxStock          = math.MaxInt32
)

// MaxPrecio es la cota superior exclusiva del precio (12 dígitos enteros).
var MaxPrecio = decimal.New(1, 12)
