package recipe

import (
	"regexp"
	"strings"

	"recipe-transformer/internal/pkg/common"
)

// Substitution replaces every occurrence of Trigger, case-insensitively.
type Substitution struct {
	Trigger     string
	Replacement string
}

// Profile is an ordered substitution table plus the title suffix and
// keyword tag added to the rewritten recipe.
type Profile struct {
	Name          string
	TitleSuffix   string
	Keyword       string
	Substitutions []Substitution

	patterns []*regexp.Regexp
}

// NewProfile compiles the table once. Entries are applied in order, so a
// later trigger can match text produced by an earlier replacement.
func NewProfile(name, titleSuffix, keyword string, subs []Substitution) Profile {
	patterns := make([]*regexp.Regexp, len(subs))
	for i, s := range subs {
		patterns[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(s.Trigger))
	}
	return Profile{
		Name:          name,
		TitleSuffix:   titleSuffix,
		Keyword:       keyword,
		Substitutions: subs,
		patterns:      patterns,
	}
}

var (
	VeganProfile = NewProfile("vegan", " (Vegan)", "vegan", []Substitution{
		{"süt", "bitkisel süt"},
		{"yoğurt", "bitkisel yoğurt"},
		{"peynir", "vegan peynir"},
		{"tereyağı", "zeytinyağı"},
		{"yumurta", "keten tohumu yumurtası"},
		{"bal", "agave şurubu"},
		{"et", "bitkisel protein"},
		{"tavuk", "nohut/karnabahar"},
		{"kıyma", "soya kıyması"},
	})

	DietProfile = NewProfile("diet", " (Diyet)", "diyet", []Substitution{
		{"şeker", "eritritol/stevia"},
		{"tereyağı", "zeytinyağı"},
		{"kızart", "fırınla"},
	})
)

// Substitute lowercases every ingredient and step line of r and applies the
// profile's table to it. Lines without a trigger still come back lowercased.
func Substitute(r common.Recipe, p Profile) common.Recipe {
	out := r.Clone()
	for i, line := range out.Ingredients {
		out.Ingredients[i] = p.rewrite(line)
	}
	for i, line := range out.Steps {
		out.Steps[i] = p.rewrite(line)
	}
	out.Title = r.Title + p.TitleSuffix
	out.Keywords = common.WithKeyword(r.Keywords, p.Keyword)
	return out
}

func (p Profile) rewrite(line string) string {
	line = strings.ToLower(line)
	for i, re := range p.patterns {
		line = re.ReplaceAllLiteralString(line, p.Substitutions[i].Replacement)
	}
	return line
}
