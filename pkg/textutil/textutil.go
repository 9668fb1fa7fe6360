package textutil

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseDecimal interpreta texto livre do usuário como decimal, aceitando
// vírgula como separador decimal ("12,5" -> 12.5). Espaços nas pontas são
// ignorados.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(normalized)
}

// RoundMoney arredonda para duas casas com round-half-up (regra comercial).
// Decimal.Round arredonda half away from zero, que para valores positivos é
// exatamente o half-up esperado.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Token normaliza um rótulo para uso como token estável de callback:
// minúsculas, sem acentos, espaços viram hífen ("Cafés" -> "cafes").
func Token(label string) string {
	stripped, _, err := transform.String(stripper, label)
	if err != nil {
		stripped = label
	}
	lowered := strings.ToLower(strings.TrimSpace(stripped))
	return strings.Join(strings.Fields(lowered), "-")
}
