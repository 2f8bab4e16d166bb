package recipe

import (
	"context"
	"errors"
	"testing"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/core/ai/service"
	"recipe-transformer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	available bool
	reply     string
	err       error
	requests  []*provider.Request
}

func (f *fakeGenerator) Available() bool { return f.available }

func (f *fakeGenerator) Complete(_ context.Context, _ string, req *provider.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) CompleteJSON(ctx context.Context, operation string, req *provider.Request, v interface{}) error {
	content, err := f.Complete(ctx, operation, req)
	if err != nil {
		return err
	}
	return common.DecodeModelJSON(content, v)
}

func sampleRecipe() common.Recipe {
	return common.Recipe{
		Title:       "Omlet",
		Ingredients: []string{"3 adet yumurta", "1 su bardağı süt", "1 çay kaşığı tuz"},
		Steps:       []string{"Yumurtaları çırpın", "Tavada pişirin"},
		Portions:    2,
		Keywords:    []string{"kahvaltı"},
	}
}

func TestTransform_UnknownType(t *testing.T) {
	s := NewTransformService(&fakeGenerator{})
	_, err := s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: "keto"})
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestTransform_FallbackWhenUnconfigured(t *testing.T) {
	ai := &fakeGenerator{available: false}
	s := NewTransformService(ai)

	out, err := s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformVegan})
	require.NoError(t, err)
	assert.Equal(t, Substitute(sampleRecipe(), VeganProfile), out)
	assert.Empty(t, ai.requests)

	out, err = s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformPortion, TargetPortions: 4})
	require.NoError(t, err)
	assert.Equal(t, ScalePortions(sampleRecipe(), 4, 0), out)

	// a nil adapter behaves like an unconfigured one
	out, err = NewTransformService(nil).Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformDiet})
	require.NoError(t, err)
	assert.Equal(t, "Omlet (Diyet)", out.Title)

	var unconfigured *service.Service
	out, err = NewTransformService(unconfigured).Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformDiet})
	require.NoError(t, err)
	assert.Equal(t, "Omlet (Diyet)", out.Title)
}

func TestTransform_ModelVegan(t *testing.T) {
	ai := &fakeGenerator{
		available: true,
		reply: "İşte vegan tarif:\n```json\n" +
			`{"title":"Vegan Omlet","ingredients":["200 gr tofu","1 su bardağı yulaf sütü"],"steps":["Tofuyu ezin"]}` +
			"\n```",
	}
	s := NewTransformService(ai)

	out, err := s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformVegan})
	require.NoError(t, err)

	assert.Equal(t, "Vegan Omlet", out.Title)
	assert.Equal(t, []string{"200 gr tofu", "1 su bardağı yulaf sütü"}, out.Ingredients)
	assert.Equal(t, []string{"Tofuyu ezin"}, out.Steps)
	assert.Equal(t, []string{"kahvaltı", "vegan"}, out.Keywords)
	assert.Equal(t, 2.0, out.Portions)

	require.Len(t, ai.requests, 1)
	req := ai.requests[0]
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 2000, req.MaxTokens)
	assert.Equal(t, veganSystemPrompt, req.Messages[0].Content)
	assert.Contains(t, req.Messages[1].Content, "3 adet yumurta\n1 su bardağı süt")
}

func TestTransform_ModelDietDefaultsTitle(t *testing.T) {
	ai := &fakeGenerator{available: true, reply: `{"ingredients":["3 adet yumurta akı"],"steps":["Çırpın"]}`}
	s := NewTransformService(ai)

	out, err := s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformDiet})
	require.NoError(t, err)
	assert.Equal(t, "Omlet (Diyet)", out.Title)
	assert.Equal(t, []string{"3 adet yumurta akı"}, out.Ingredients)
	assert.Equal(t, dietSystemPrompt, ai.requests[0].Messages[0].Content)
}

func TestTransform_ModelFailuresFallBack(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"provider error", "", errors.New("status 500")},
		{"no json", "Üzgünüm, bunu yapamam.", nil},
		{"unbalanced json", `{"title":"Vegan Omlet","ingredients":[`, nil},
		{"malformed json", `{title: "Vegan"}`, nil},
		{"missing steps", `{"title":"Vegan Omlet","ingredients":["tofu"]}`, nil},
		{"missing ingredients", `{"title":"Vegan Omlet","steps":["pişir"]}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTransformService(&fakeGenerator{available: true, reply: tt.reply, err: tt.err})
			out, err := s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformVegan})
			require.NoError(t, err)
			assert.Equal(t, Substitute(sampleRecipe(), VeganProfile), out)
		})
	}
}

func TestTransform_ModelPortion(t *testing.T) {
	ai := &fakeGenerator{available: true, reply: `{"title":"Omlet (6 kişilik)","ingredients":["9 adet yumurta","3 su bardağı süt","1 çay kaşığı tuz"]}`}
	s := NewTransformService(ai)

	out, err := s.Transform(context.Background(), TransformRequest{Recipe: sampleRecipe(), Type: TransformPortion, TargetPortions: 6})
	require.NoError(t, err)
	assert.Equal(t, "Omlet (6 kişilik)", out.Title)
	assert.Equal(t, []string{"9 adet yumurta", "3 su bardağı süt", "1 çay kaşığı tuz"}, out.Ingredients)
	assert.Equal(t, sampleRecipe().Steps, out.Steps)
	assert.Equal(t, 6.0, out.Portions)
	assert.Equal(t, []string{"kahvaltı", "porsiyon"}, out.Keywords)

	req := ai.requests[0]
	assert.Equal(t, 0.3, req.Temperature)
	assert.Equal(t, 1500, req.MaxTokens)
	assert.Contains(t, req.Messages[1].Content, "Şu tarif şu anda 2 porsiyon için. Bunu 6 porsiyon için ölçekle")
}

func TestTransform_PortionDefaultsAndSkips(t *testing.T) {
	ai := &fakeGenerator{available: true, reply: `{"ingredients":["x"]}`}
	s := NewTransformService(ai)

	// missing target means 1
	r := sampleRecipe()
	r.Portions = 1
	out, err := s.Transform(context.Background(), TransformRequest{Recipe: r, Type: TransformPortion})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Portions)
	assert.Empty(t, ai.requests, "no model call when portions are unchanged")
	assert.Equal(t, ScalePortions(r, 1, 0), out)
}
