package recipe

import "strings"

// fixedIngredients lists fragments of seasonings, leaveners, extracts, acids
// and dried herbs. Their quantities are capped when a recipe is scaled.
var fixedIngredients = []string{
	"tuz",
	"karabiber",
	"kırmızıbiber",
	"toz biber",
	"pul biber",
	"karbonat",
	"kabartma tozu",
	"mayalama tozu",
	"vanilya",
	"vanilin",
	"vanilya özü",
	"limon suyu",
	"sirke",
	"biberiye",
	"kekik",
	"nane",
	"fesleğen",
	"tarçın",
	"karanfil",
	"yenibahar",
}

// IsFixedIngredient reports whether any fixed fragment occurs in the
// lowercased line. Plain substring matching, so "tuzlu" also matches.
func IsFixedIngredient(text string) bool {
	lower := strings.ToLower(text)
	for _, fragment := range fixedIngredients {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
