package common

import (
	"fmt"
	"slices"
	"strings"
)

// Recipe is the recipe shape exchanged with the mobile client.
// Portions of 0 means the client did not send one.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	MainType    string   `json:"main_type,omitempty"`
	SubType     string   `json:"sub_type,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Portions    float64  `json:"portions,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Clone returns a deep copy so transforms never touch the caller's slices.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = slices.Clone(r.Ingredients)
	out.Steps = slices.Clone(r.Steps)
	out.Keywords = slices.Clone(r.Keywords)
	return out
}

// WithKeyword returns a copy of keywords with tag appended.
func WithKeyword(keywords []string, tag string) []string {
	out := make([]string, 0, len(keywords)+1)
	out = append(out, keywords...)
	return append(out, tag)
}

// ShoppingItem is one line of a shopping list.
type ShoppingItem struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// FormatIngredients renders ingredients one per line, as sent to the model.
func FormatIngredients(ingredients []string) string {
	return strings.Join(ingredients, "\n")
}

// FormatBulleted renders lines as "- line".
func FormatBulleted(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(line)
	}
	return sb.String()
}

// FormatNumbered renders lines as "1. line".
func FormatNumbered(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, line))
	}
	return sb.String()
}
