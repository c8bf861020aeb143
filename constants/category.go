package constants

import (
	"strings"
)

type Category string

const (
	Grocery   Category = "Grocery"
	Meat      Category = "Meat"
	Produce   Category = "Produce"
	Bakery    Category = "Bakery"
	Dairy     Category = "Dairy"
	Beverages Category = "Beverages"
	Cleaning  Category = "Cleaning"
	Hygiene   Category = "Hygiene"
	Other     Category = "Other"
)

var allCategories = []Category{
	Grocery,
	Meat,
	Produce,
	Bakery,
	Dairy,
	Beverages,
	Cleaning,
	Hygiene,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Describe returns a short definition for a category, used in the extraction
// prompt so the model picks consistently.
func Describe(c Category) string {
	switch c {
	case Grocery:
		return "Shelf-stable pantry items (rice, beans, pasta, oil, sugar, canned goods, snacks)."
	case Meat:
		return "Fresh or frozen meat, poultry, fish and cold cuts."
	case Produce:
		return "Fruits, vegetables and greens."
	case Bakery:
		return "Bread, cakes and other bakery goods."
	case Dairy:
		return "Milk, cheese, yogurt, butter and other dairy."
	case Beverages:
		return "Drinks: water, juice, soda, beer, wine, ready-to-drink coffee."
	case Cleaning:
		return "Household cleaning products (detergent, bleach, softener, sponges)."
	case Hygiene:
		return "Personal care (soap, shampoo, toothpaste, diapers, deodorant)."
	default:
		return "Use only when nothing else applies unambiguously."
	}
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map — Portuguese labels the model tends to emit
	synonyms := map[string]Category{
		"mercearia":          Grocery,
		"alimentos":          Grocery,
		"basicos":            Grocery,
		"básicos":            Grocery,
		"carnes":             Meat,
		"acougue":            Meat,
		"açougue":            Meat,
		"peixaria":           Meat,
		"hortifruti":         Produce,
		"frutas":             Produce,
		"verduras":           Produce,
		"legumes":            Produce,
		"padaria":            Bakery,
		"paes":               Bakery,
		"pães":               Bakery,
		"laticinios":         Dairy,
		"laticínios":         Dairy,
		"frios e laticinios": Dairy,
		"bebidas":            Beverages,
		"limpeza":            Cleaning,
		"higiene":            Hygiene,
		"higiene pessoal":    Hygiene,
		"perfumaria":         Hygiene,
		"outros":             Other,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
