package llm

// BuildPromotionsJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the expected model output: a top-level array of promotions. Dates are left
// as plain strings so a malformed date degrades through the documented
// fallback instead of rejecting the whole market.
func BuildPromotionsJSONSchema(allowedCategories []string) map[string]any {
	categoryProp := map[string]any{"type": "string"}
	if len(allowedCategories) > 0 {
		categoryProp = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	productProps := map[string]any{
		"description": map[string]any{"type": "string", "minLength": 1},
		"price":       map[string]any{"type": []string{"string", "number"}},
		"category":    categoryProp,
	}
	postProps := map[string]any{
		"post_code": map[string]any{"type": "string", "minLength": 1},
		"products": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object", "properties": productProps, "required": []string{"description"}},
		},
	}
	promotionProps := map[string]any{
		"market_name": map[string]any{"type": "string"},
		"title":       map[string]any{"type": "string"},
		"start_date":  map[string]any{"type": "string"},
		"end_date":    map[string]any{"type": "string"},
		"posts": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object", "properties": postProps, "required": []string{"post_code"}},
		},
	}

	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":       "object",
			"properties": promotionProps,
			"required":   []string{"posts"},
		},
	}
}
