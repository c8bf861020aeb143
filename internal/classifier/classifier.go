// Package classifier decides whether OCR text from a post image reads like a
// promotional price catalog. It is a tuned keyword/pattern heuristic, not a
// statistical model.
package classifier

import (
	"regexp"
	"strings"
	"unicode"
)

// keywords signal discount language, price language, or validity/weekday
// language as it appears on Brazilian supermarket catalog art.
var keywords = []string{
	"oferta",
	"ofertas",
	"promoção",
	"promoções",
	"promocao",
	"promocoes",
	"desconto",
	"descontos",
	"liquidação",
	"liquidacao",
	"imperdível",
	"imperdivel",
	"economize",
	"preço",
	"preços",
	"preco",
	"precos",
	"apenas",
	"cada",
	"unidade",
	"leve",
	"pague",
	"grátis",
	"gratis",
	"válido",
	"valido",
	"validade",
	"segunda",
	"terça",
	"terca",
	"quarta",
	"quinta",
	"sexta",
	"sábado",
	"sabado",
	"domingo",
	"feira",
	"encarte",
	"quilo",
	"bandeja",
	"pacote",
}

var pricePatterns = []*regexp.Regexp{
	// currency-prefixed amounts: R$ 9,99 / R$1.234,56 / rs 5,00
	regexp.MustCompile(`r\$\s*\d{1,3}(\.\d{3})*(,\d{2})?`),
	regexp.MustCompile(`rs\s*\d+([.,]\d{2})?`),
	// bare localized decimals: 9,99
	regexp.MustCompile(`\b\d{1,3}(\.\d{3})*,\d{2}\b`),
	// "de X por Y" before/after pricing
	regexp.MustCompile(`\bde\s+r?\$?\s*[\d.,]+\s+por\s+r?\$?\s*[\d.,]+`),
}

// IsCatalog reports whether text recognized from one image is a promotional
// catalog. Decision rule: (keyword hit AND price-pattern hit) OR at least 3
// distinct keyword hits. Empty or whitespace-only text is never a catalog,
// and exactly 2 keyword hits with no price pattern resolves to false.
func IsCatalog(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}

	hits := countKeywordHits(t)
	if hits >= 3 {
		return true
	}
	return hits > 0 && hasPricePattern(t)
}

var keywordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}
	return set
}()

// countKeywordHits splits on non-letter runes and counts distinct keyword
// tokens. Matching whole words only keeps "cada" from firing inside
// "arrecadado" and "leve" inside "televendas".
func countKeywordHits(t string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(t, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if _, ok := keywordSet[w]; ok {
			seen[w] = struct{}{}
		}
	}
	return len(seen)
}

func hasPricePattern(t string) bool {
	for _, re := range pricePatterns {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}
