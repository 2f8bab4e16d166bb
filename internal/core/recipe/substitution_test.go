package recipe

import (
	"testing"

	"recipe-transformer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute_Vegan(t *testing.T) {
	r := common.Recipe{
		Title:       "Sütlaç",
		Ingredients: []string{"1 su bardağı süt", "2 yemek kaşığı Yoğurt", "Yarım Limon"},
		Steps:       []string{"Sütü kaynatın", "Fırını Önceden Hazırlayın"},
		Keywords:    []string{"tatlı"},
	}

	out := Substitute(r, VeganProfile)

	assert.Equal(t, "Sütlaç (Vegan)", out.Title)
	assert.Equal(t, []string{
		"1 su bardağı bitkisel süt",
		"2 yemek kaşığı bitkisel yoğurt",
		"yarım limon",
	}, out.Ingredients)
	assert.Equal(t, []string{
		"bitkisel sütü kaynatın",
		"fırını önceden hazırlayın",
	}, out.Steps)
	assert.Equal(t, []string{"tatlı", "vegan"}, out.Keywords)

	assert.Equal(t, "1 su bardağı süt", r.Ingredients[0])
	assert.Equal(t, []string{"tatlı"}, r.Keywords)
}

func TestSubstitute_Diet(t *testing.T) {
	r := common.Recipe{
		Title:       "Kurabiye",
		Ingredients: []string{"1 su bardağı Şeker", "125 gr tereyağı"},
		Steps:       []string{"Soğanları tereyağında kavurun"},
	}

	out := Substitute(r, DietProfile)

	assert.Equal(t, "Kurabiye (Diyet)", out.Title)
	assert.Equal(t, []string{"1 su bardağı eritritol/stevia", "125 gr zeytinyağı"}, out.Ingredients)
	assert.Equal(t, []string{"soğanları zeytinyağında kavurun"}, out.Steps)
	assert.Equal(t, []string{"diyet"}, out.Keywords)
}

func TestSubstitute_OrderMatters(t *testing.T) {
	chain := NewProfile("chain", "", "chain", []Substitution{
		{"elma", "armut"},
		{"armut", "ayva"},
	})
	reversed := NewProfile("reversed", "", "reversed", []Substitution{
		{"armut", "ayva"},
		{"elma", "armut"},
	})

	r := common.Recipe{Ingredients: []string{"2 ELMA"}}
	assert.Equal(t, []string{"2 ayva"}, Substitute(r, chain).Ingredients)
	assert.Equal(t, []string{"2 armut"}, Substitute(r, reversed).Ingredients)
}

func TestSubstitute_TriggerIsLiteral(t *testing.T) {
	p := NewProfile("literal", "", "literal", []Substitution{{"a.b", "x$1"}})

	out := Substitute(common.Recipe{Ingredients: []string{"a.b acb"}}, p)
	assert.Equal(t, []string{"x$1 acb"}, out.Ingredients)
}
