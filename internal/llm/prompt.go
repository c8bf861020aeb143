package llm

import (
	"strings"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/aggregator"
)

// BuildSystemPrompt composes the instruction: category enum with rubric,
// date defaults, and the strict output-format requirement (a JSON array, no
// prose, no Markdown fences).
func BuildSystemPrompt(req ExtractRequest) string {
	var catLine string
	if len(req.AllowedCategories) > 0 {
		catLine = "Every product MUST include a 'category' and it MUST be exactly one of the allowed enum. " +
			"If uncertain, choose 'Other'. Allowed categories (enum): " + strings.Join(req.AllowedCategories, ", ") + ". "
	} else {
		catLine = "Every product MUST include a 'category' that is a short, sensible label. If uncertain, use 'Other'. "
	}
	rubric := buildCategoryRubric(req.AllowedCategories)

	parts := []string{
		"You are a supermarket catalog parser. The input is OCR text from promotional catalog images posted by the market '" +
			req.MarketName + "'. Sub-blocks are delimited with '" + aggregator.PostDelimiter + " <code>' markers.",
		"Return ONLY a JSON array. No prose, no Markdown fences, no explanations.",
		"Each array element is one promotion: " +
			`{"market_name": string, "title": string, "start_date": "DD/MM/YYYY", "end_date": "DD/MM/YYYY", ` +
			`"posts": [{"post_code": string, "products": [{"description": string, "price": string, "category": string}]}]}.`,
		"Dates use DD/MM/YYYY. If the catalog shows no validity dates, use " +
			req.TargetDate.Format("02/01/2006") + " as start_date and the following day as end_date.",
		"Group products under the post whose delimiter code they appeared after; 'post_code' must be one of the delimiter codes from the input.",
		"Keep 'price' exactly as printed (e.g. 'R$ 1.234,56'). Do not convert currencies.",
		catLine,
		"Category selection rubric: " + rubric,
		"If the text describes multiple validity windows, emit one promotion per window.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the aggregated text. OCR output is capped so one
// oversized catalog cannot blow the context window.
func BuildUserPrompt(req ExtractRequest) string {
	const maxChars = 12000

	var b strings.Builder
	b.WriteString("Market: ")
	b.WriteString(req.MarketName)
	b.WriteString(" (@")
	b.WriteString(req.MarketHandle)
	b.WriteString(")\n\nOCR text:\n")

	text := req.AggregatedText
	if len(text) > maxChars {
		b.WriteString(text[:maxChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}

// buildCategoryRubric emits short rules only for categories present in the
// enum, with tie-breakers so the model does not oscillate between buckets.
func buildCategoryRubric(allowed []string) string {
	if len(allowed) == 0 {
		return "Use the product name to pick the closest category; if uncertain, choose 'Other'."
	}

	var parts []string
	for _, c := range allowed {
		parts = append(parts, c+": "+constants.Describe(constants.Category(c)))
	}
	if hasAll(allowed, string(constants.Grocery), string(constants.Beverages)) {
		parts = append(parts, "Tie-breaker: drinkable items always go to 'Beverages', even shelf-stable ones (juice boxes, canned beer).")
	}
	if hasAll(allowed, string(constants.Cleaning), string(constants.Hygiene)) {
		parts = append(parts, "Tie-breaker: products applied to the body → 'Hygiene'; products applied to the house → 'Cleaning'.")
	}
	return strings.Join(parts, " | ")
}

func hasAll(list []string, a, b string) bool {
	foundA, foundB := false, false
	for _, x := range list {
		if x == a {
			foundA = true
		} else if x == b {
			foundB = true
		}
	}
	return foundA && foundB
}
