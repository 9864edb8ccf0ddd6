package http

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/tienda-api/internal/domain"
)

var validate = newValidator()

// newValidator usa el nombre JSON del campo en los mensajes.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// paramID lee el segmento :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validation("El id debe ser un entero positivo.")
	}
	return id, nil
}

// paramNombre lee el segmento :nombre decodificando escapes de la URL.
// Vacío es válido: el caso de uso responde no encontrado.
func paramNombre(c *fiber.Ctx) (string, error) {
	nombre, err := url.PathUnescape(c.Params("nombre"))
	if err != nil {
		return "", domain.Validation("Nombre inválido.")
	}
	return nombre, nil
}

// queryCantidad lee ?cantidad= como entero; el signo lo valida el caso de uso.
func queryCantidad(c *fiber.Ctx) (int, error) {
	raw := c.Query("cantidad")
	if raw == "" {
		return 0, domain.Validation("El parámetro cantidad es requerido.")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Validation("El parámetro cantidad debe ser un entero.")
	}
	return n, nil
}

// parseBody decodifica el JSON y aplica las reglas `validate` del DTO.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if err := validate.Struct(out); err != nil {
		return false, writeError(c, validationError(err))
	}
	return true, nil
}

func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return domain.Validation("Datos inválidos.")
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.Validation("El campo %s es requerido.", fe.Field())
	case "max":
		return domain.Validation("El campo %s supera la longitud máxima (%s).", fe.Field(), fe.Param())
	default:
		return domain.Validation("El campo %s no es válido.", fe.Field())
	}
}
