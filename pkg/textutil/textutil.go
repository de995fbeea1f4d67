package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics decompõe (NFD) e descarta as marcas de acentuação.
var removeDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize devolve s em minúsculas e sem acentos, para comparação de busca.
// "São João" -> "sao joao". Se a transformação falhar, devolve s em minúsculas.
func Normalize(s string) string {
	out, _, err := transform.String(removeDiacritics, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold informa se needle ocorre em haystack ignorando caixa e acentos.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
