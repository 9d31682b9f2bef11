package catalog

import "strings"

// GeneralCategory is the sentinel for codes that carry no category prefix.
const GeneralCategory = "General"

// markerWord is the second code token that makes a reserved prefix stick,
// e.g. "Bakery_Product_1_Bread" keeps "Bakery_Product" as its category.
const markerWord = "Product"

// Reserved category tokens name goods the weight field does not apply to.
var reservedTokens = map[string]bool{
	"Bakery":  true,
	"Packing": true,
}

// DeriveCategory extracts the category from a structured product code.
// The code is split on "_": a reserved first token followed by the marker
// word keeps the two-token prefix, any other first token stands alone, and
// codes without a separator fall back to GeneralCategory.
func DeriveCategory(code string) string {
	if !strings.Contains(code, "_") {
		return GeneralCategory
	}
	tokens := strings.Split(code, "_")
	if tokens[0] == "" {
		return GeneralCategory
	}
	if reservedTokens[tokens[0]] && len(tokens) > 1 && tokens[1] == markerWord {
		return tokens[0] + "_" + tokens[1]
	}
	return tokens[0]
}

// WeightApplicable reports whether products in the category carry a weight.
func WeightApplicable(category string) bool {
	token, _, _ := strings.Cut(category, "_")
	return !reservedTokens[token]
}
