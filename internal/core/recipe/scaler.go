package recipe

import (
	"fmt"
	"math"

	"recipe-transformer/internal/pkg/common"
)

const (
	// maxFixedFactor caps how far a fixed ingredient can grow.
	maxFixedFactor = 1.5
	// smallFixedValue and freezeFactor: fixed tokens at or under
	// smallFixedValue keep their text once the capped factor exceeds
	// freezeFactor.
	smallFixedValue = 2.0
	freezeFactor    = 1.2

	PortionKeyword = "porsiyon"
)

// ResolvePortions returns the source serving count: current when positive,
// otherwise the recipe's own portions, otherwise 1.
func ResolvePortions(r common.Recipe, current float64) float64 {
	if current > 0 {
		return current
	}
	if r.Portions > 0 {
		return r.Portions
	}
	return 1
}

// ScalePortions rewrites the ingredient quantities of r for target servings.
// Steps are left untouched. The result carries Portions=target, a
// "(N porsiyon)" title suffix and the "porsiyon" keyword.
func ScalePortions(r common.Recipe, target, current float64) common.Recipe {
	if target <= 0 {
		target = 1
	}
	factor := target / ResolvePortions(r, current)

	out := r.Clone()
	for i, line := range out.Ingredients {
		out.Ingredients[i] = scaleLine(line, factor)
	}
	out.Title = PortionTitle(r.Title, target)
	out.Portions = target
	out.Keywords = common.WithKeyword(r.Keywords, PortionKeyword)
	return out
}

// PortionTitle appends the serving count to title.
func PortionTitle(title string, portions float64) string {
	return fmt.Sprintf("%s (%s porsiyon)", title, common.FormatNumber(portions))
}

func scaleLine(line string, factor float64) string {
	if !IsFixedIngredient(line) {
		return ReplaceQuantities(line, func(q Quantity) (string, bool) {
			return formatQuantity(q.Value * factor), true
		})
	}

	adjusted := math.Min(factor, maxFixedFactor)
	return ReplaceQuantities(line, func(q Quantity) (string, bool) {
		if q.Value <= smallFixedValue && adjusted > freezeFactor {
			return "", false
		}
		return formatQuantity(q.Value * adjusted), true
	})
}
