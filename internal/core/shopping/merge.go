package shopping

import (
	"strings"

	"recipe-transformer/internal/pkg/common"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName is the merge key: trimmed, lowercased and NFC composed so
// "Süt" typed with a combining diaeresis matches the precomposed form.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
}

// Flatten tags every item with its source recipe, preserving order.
func Flatten(lists []RecipeItems) []FlattenedItem {
	var out []FlattenedItem
	for i, list := range lists {
		for _, item := range list.Items {
			out = append(out, FlattenedItem{
				RecipeIndex: i,
				RecipeTitle: list.Title,
				Name:        item.Name,
				Quantity:    item.Quantity,
				Unit:        item.Unit,
			})
		}
	}
	return out
}

// Merge aggregates items by normalized name in first-seen order. Quantities
// under one name are summed without unit conversion; the first non-empty
// unit wins. Items with a blank name are dropped.
func Merge(items []FlattenedItem) []common.ShoppingItem {
	out := make([]common.ShoppingItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		key := NormalizeName(item.Name)
		if key == "" {
			continue
		}

		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, common.ShoppingItem{
				Name:     key,
				Quantity: copyQuantity(item.Quantity),
				Unit:     item.Unit,
			})
			continue
		}

		agg := &out[i]
		if item.Quantity != nil {
			if agg.Quantity == nil {
				agg.Quantity = copyQuantity(item.Quantity)
			} else {
				agg.Quantity = common.Float64Ptr(*agg.Quantity + *item.Quantity)
			}
		}
		if agg.Unit == "" {
			agg.Unit = item.Unit
		}
	}

	return out
}

func copyQuantity(q *float64) *float64 {
	if q == nil {
		return nil
	}
	return common.Float64Ptr(*q)
}
