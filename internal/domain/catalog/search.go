// Package catalog reglas del catálogo público (búsqueda por nombre de negocio).
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza un texto para comparar sin tildes ni mayúsculas: "Panadería" → "panaderia".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(strings.TrimSpace(out))
}

// Matches informa si name contiene la consulta q (insensible a tildes y mayúsculas).
// Una consulta vacía coincide con todo.
func Matches(name, q string) bool {
	fq := Fold(q)
	if fq == "" {
		return true
	}
	return strings.Contains(Fold(name), fq)
}
