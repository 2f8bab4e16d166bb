package shopping

import (
	"strings"

	"recipe-transformer/internal/pkg/common"
)

// ParseFallback turns each non-blank line into an item named by the trimmed,
// lowercased line. No quantity or unit is extracted.
func ParseFallback(lines []string) []common.ShoppingItem {
	out := make([]common.ShoppingItem, 0, len(lines))
	for _, line := range lines {
		name := strings.ToLower(strings.TrimSpace(line))
		if name == "" {
			continue
		}
		out = append(out, common.ShoppingItem{Name: name})
	}
	return out
}

// cleanItems trims model output and drops items without a name or with a
// non-positive quantity.
func cleanItems(items []common.ShoppingItem) []common.ShoppingItem {
	out := make([]common.ShoppingItem, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		if item.Quantity != nil && *item.Quantity <= 0 {
			item.Quantity = nil
		}
		item.Unit = strings.TrimSpace(item.Unit)
		out = append(out, item)
	}
	return out
}
