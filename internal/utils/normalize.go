package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeCategory remove acentos, caixa e separadores de uma categoria
// Exemplo: "Política" -> "politica", "US-Elections" -> "us elections"
func NormalizeCategory(category string) string {
	if category == "" {
		return category
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, category)
	normalized = strings.ToLower(normalized)

	normalized = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, normalized)

	return strings.Join(strings.Fields(normalized), " ")
}

// ResolveCategory encontra a categoria canônica correspondente ao valor recebido
// numa query string. Sem correspondência, devolve o valor original.
func ResolveCategory(input string, known []string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	for _, category := range known {
		if category == trimmed {
			return category
		}
	}
	target := NormalizeCategory(trimmed)
	for _, category := range known {
		if NormalizeCategory(category) == target {
			return category
		}
	}
	return trimmed
}
