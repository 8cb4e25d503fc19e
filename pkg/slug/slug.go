// Package slug deriva identificadores URL-safe a partir de nombres de artículos.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make deriva un slug URL-safe: minúsculas, sin diacríticos, [a-z0-9_-].
// "Café con Leche" -> "cafe-con-leche". Devuelve cadena vacía si el nombre
// no contiene ningún carácter usable.
func Make(name string) string {
	// Descomponer y eliminar marcas diacríticas (é -> e)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// Valid reporta si s es un slug URL-safe (equivale a ^[a-zA-Z0-9_-]*$).
func Valid(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
