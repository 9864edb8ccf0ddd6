package usecase

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func checkNombreLen(nombre string) error {
	if utf8.RuneCountInString(nombre) > entity.MaxNombreLen {
		return domain.Validation("El nombre supera la longitud máxima (%d).", entity.MaxNombreLen)
	}
	return nil
}

func checkDescripcion(descripcion *string) error {
	if descripcion != nil && utf8.RuneCountInString(*descripcion) > entity.MaxDescripcionLen {
		return domain.Validation("La descripción supera la longitud máxima (%d).", entity.MaxDescripcionLen)
	}
	return nil
}

func checkStock(stock int) error {
	if stock < 0 {
		return domain.Validation(msgNegativeStock)
	}
	if stock > entity.MaxStock {
		return domain.Validation("El stock supera el máximo permitido (%d).", entity.MaxStock)
	}
	return nil
}

// checkPrecio rechaza en vez de redondear: lo que se guarda es lo que se envió.
func checkPrecio(precio decimal.Decimal) error {
	if precio.IsNegative() {
		return domain.Validation(msgNegativePrice)
	}
	if !precio.Equal(precio.Round(entity.PrecioScale)) {
		return domain.Validation("El precio admite como máximo %d decimales.", entity.PrecioScale)
	}
	if precio.GreaterThanOrEqual(entity.MaxPrecio) {
		return domain.Validation("El precio debe ser menor que %s.", entity.MaxPrecio.String())
	}
	return nil
}
