package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"title":"Kek"}`, `{"title":"Kek"}`},
		{"markdown fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"preamble and trailer", "İşte tarif: {\"a\":{\"b\":2}} umarım beğenirsin", `{"a":{"b":2}}`},
		{"braces inside strings", `{"t":"a } b { c"}`, `{"t":"a } b { c"}`},
		{"escaped quote", `{"t":"he said \"}\""}`, `{"t":"he said \"}\""}`},
		{"first of two objects", `{"a":1} {"b":2}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONObject_Failures(t *testing.T) {
	for _, in := range []string{"", "no json here", `{"a":1`, `{"a":"}"`} {
		_, err := ExtractJSONObject(in)
		assert.ErrorIs(t, err, ErrNoJSONObject, in)
	}
}

func TestDecodeModelJSON(t *testing.T) {
	var out struct {
		Title       string   `json:"title"`
		Ingredients []string `json:"ingredients"`
	}

	t.Run("decodes the located span", func(t *testing.T) {
		err := DecodeModelJSON("Sonuç:\n{\"title\":\"Vegan Kek\",\"ingredients\":[\"1 su bardağı bitkisel süt\"]}", &out)
		require.NoError(t, err)
		assert.Equal(t, "Vegan Kek", out.Title)
		assert.Equal(t, []string{"1 su bardağı bitkisel süt"}, out.Ingredients)
	})

	t.Run("balanced but invalid json", func(t *testing.T) {
		err := DecodeModelJSON(`{title: Kek}`, &out)
		assert.ErrorIs(t, err, ErrMalformedJSON)
	})

	t.Run("wrong shape", func(t *testing.T) {
		err := DecodeModelJSON(`{"ingredients":"not a list"}`, &out)
		assert.ErrorIs(t, err, ErrMalformedJSON)
	})

	t.Run("nothing to extract", func(t *testing.T) {
		err := DecodeModelJSON("Üzgünüm, yardımcı olamam.", &out)
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})
}
