package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrValidation   = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// Error es un error de negocio con mensaje legible para el cliente.
// Kind es uno de los sentinels de arriba; errors.Is funciona sobre él.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound construye un error ErrNotFound con mensaje formateado.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict construye un error ErrConflict con mensaje formateado.
func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Validation construye un error ErrValidation con mensaje formateado.
func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}
