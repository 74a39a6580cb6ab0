// Package textnorm normaliza texto para búsquedas sin distinguir tildes ni mayúsculas.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold quita diacríticos y pasa a minúsculas: "Pallets Plásticos" -> "pallets plasticos".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(strings.TrimSpace(out))
}

// Contains indica si needle aparece en alguno de los campos, ignorando tildes y mayúsculas.
// needle vacío coincide siempre.
func Contains(needle string, fields ...string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), n) {
			return true
		}
	}
	return false
}
