package recipe

import (
	"context"
	"errors"
	"testing"

	"recipe-transformer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	want := "Bu cevap akıllı asistan olmadan oluşturuldu, ama tarif bilgilerini özetleyebilirim.\n" +
		"\nTarif: Omlet\n" +
		"Porsiyon: 2\n" +
		"\nMalzemeler:\n" +
		"- 3 adet yumurta\n- 1 su bardağı süt\n- 1 çay kaşığı tuz\n" +
		"\nAdımlar:\n" +
		"1. Yumurtaları çırpın\n2. Tavada pişirin"
	assert.Equal(t, want, Summary(sampleRecipe()))

	assert.Equal(t,
		"Bu cevap akıllı asistan olmadan oluşturuldu, ama tarif bilgilerini özetleyebilirim.\n\nTarif: Bilinmeyen tarif",
		Summary(common.Recipe{}))
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("empty question", func(t *testing.T) {
		_, err := NewQuestionService(&fakeGenerator{available: true}).Ask(ctx, sampleRecipe(), "  ", "")
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})

	t.Run("unconfigured", func(t *testing.T) {
		answer, err := NewQuestionService(&fakeGenerator{}).Ask(ctx, sampleRecipe(), "Kaç kalori?", "")
		require.NoError(t, err)
		assert.Equal(t, Summary(sampleRecipe()), answer)
	})

	t.Run("model answer", func(t *testing.T) {
		ai := &fakeGenerator{available: true, reply: "  Yaklaşık 250 kalori.  "}
		answer, err := NewQuestionService(ai).Ask(ctx, sampleRecipe(), "Kaç kalori?", "https://example.com/omlet.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Yaklaşık 250 kalori.", answer)

		req := ai.requests[0]
		assert.Equal(t, 0.4, req.Temperature)
		assert.Equal(t, 800, req.MaxTokens)
		assert.Equal(t, "https://example.com/omlet.jpg", req.Messages[1].ImageURL)
		assert.Contains(t, req.Messages[1].Content, "Kullanıcının sorusu:\nKaç kalori?")
		assert.Contains(t, req.Messages[1].Content, "- 3 adet yumurta")
		assert.Contains(t, req.Messages[1].Content, "2. Tavada pişirin")
	})

	t.Run("inline photo", func(t *testing.T) {
		ai := &fakeGenerator{available: true, reply: "Güzel görünüyor."}
		images := &fakeImages{inline: "data:image/jpeg;base64,AAAA"}
		_, err := NewQuestionService(ai, WithImagePreparer(images)).Ask(ctx, sampleRecipe(), "Pişmiş mi?", "https://example.com/omlet.jpg")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://example.com/omlet.jpg"}, images.refs)
		assert.Equal(t, "data:image/jpeg;base64,AAAA", ai.requests[0].Messages[1].ImageURL)
		assert.Contains(t, ai.requests[0].Messages[1].Content, "https://example.com/omlet.jpg")
	})

	t.Run("unreadable photo is dropped", func(t *testing.T) {
		ai := &fakeGenerator{available: true, reply: "Cevap"}
		images := &fakeImages{err: errors.New("status code 404")}
		answer, err := NewQuestionService(ai, WithImagePreparer(images)).Ask(ctx, sampleRecipe(), "Pişmiş mi?", "https://example.com/omlet.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Cevap", answer)
		assert.Empty(t, ai.requests[0].Messages[1].ImageURL)
	})

	t.Run("no photo work without a model", func(t *testing.T) {
		images := &fakeImages{}
		_, err := NewQuestionService(&fakeGenerator{}, WithImagePreparer(images)).Ask(ctx, sampleRecipe(), "Pişmiş mi?", "https://example.com/omlet.jpg")
		require.NoError(t, err)
		assert.Empty(t, images.refs)
	})

	t.Run("model failure", func(t *testing.T) {
		ai := &fakeGenerator{available: true, err: errors.New("timeout")}
		answer, err := NewQuestionService(ai).Ask(ctx, sampleRecipe(), "Kaç kalori?", "")
		require.NoError(t, err)
		assert.Equal(t, Summary(sampleRecipe()), answer)
		assert.Contains(t, ai.requests[0].Messages[1].Content, "(fotoğraf yok)")
	})
}

type fakeImages struct {
	inline string
	err    error
	refs   []string
}

func (f *fakeImages) Prepare(_ context.Context, ref string) (string, error) {
	f.refs = append(f.refs, ref)
	return f.inline, f.err
}
