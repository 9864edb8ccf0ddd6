package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName recorta espacios y normaliza a NFC para que "Categoría" escrito con
// acento combinado o precompuesto se compare igual.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
