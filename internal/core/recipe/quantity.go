package recipe

import (
	"iter"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var quantityPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// Quantity is one numeric token found in an ingredient line.
type Quantity struct {
	Start int // byte offset of the token
	End   int
	Text  string
	Value float64
	Valid bool // false when Text could not be parsed as a float
}

// Quantities yields every numeric token of text in order. Both "." and ","
// are accepted as decimal separators. The sequence can be ranged over
// multiple times.
func Quantities(text string) iter.Seq[Quantity] {
	return func(yield func(Quantity) bool) {
		for _, loc := range quantityPattern.FindAllStringIndex(text, -1) {
			token := text[loc[0]:loc[1]]
			value, err := strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 64)
			q := Quantity{
				Start: loc[0],
				End:   loc[1],
				Text:  token,
				Value: value,
				Valid: err == nil,
			}
			if !yield(q) {
				return
			}
		}
	}
}

// ReplaceQuantities rewrites every valid token with the string returned by
// fn. Invalid tokens, and tokens for which fn reports false, keep their text.
func ReplaceQuantities(text string, fn func(q Quantity) (string, bool)) string {
	var sb strings.Builder
	last := 0
	for q := range Quantities(text) {
		if !q.Valid {
			continue
		}
		replacement, ok := fn(q)
		if !ok {
			continue
		}
		sb.WriteString(text[last:q.Start])
		sb.WriteString(replacement)
		last = q.End
	}
	if last == 0 {
		return text
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// formatQuantity prints whole numbers without a fraction and everything else
// with exactly one decimal place, rounding halves up (2.96 -> "3.0").
func formatQuantity(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(math.Floor(v*10+0.5)/10, 'f', 1, 64)
}
