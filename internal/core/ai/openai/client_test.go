package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-transformer/internal/core/ai/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(provider.Config{
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
}

func TestClient_Generate(t *testing.T) {
	var received map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  {\"items\":[]}  "}}],"usage":{"total_tokens":42}}`))
	})

	resp, err := client.Generate(context.Background(), &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: "sistem"},
			{Role: provider.RoleUser, Content: "soru"},
		},
		MaxTokens:   1500,
		Temperature: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, resp.Content)
	assert.Equal(t, 42, resp.Usage.TotalTokens)

	assert.Equal(t, "gpt-4o-mini", received["model"])
	assert.Equal(t, 0.2, received["temperature"])
	assert.Equal(t, float64(1500), received["max_tokens"])
	messages := received["messages"].([]interface{})
	require.Len(t, messages, 2)
	assert.Equal(t, "soru", messages[1].(map[string]interface{})["content"])
}

func TestClient_GenerateWithImage(t *testing.T) {
	var received struct {
		Messages []struct {
			Content []contentPart `json:"content"`
		} `json:"messages"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Fotoğraftaki kek pişmiş görünüyor."}}]}`))
	})

	_, err := client.Generate(context.Background(), &provider.Request{
		Messages: []provider.Message{
			{Role: provider.RoleUser, Content: "Bu nasıl?", ImageURL: "https://example.com/kek.jpg"},
		},
	})
	require.NoError(t, err)
	require.Len(t, received.Messages, 1)
	require.Len(t, received.Messages[0].Content, 2)
	assert.Equal(t, "text", received.Messages[0].Content[0].Type)
	assert.Equal(t, "https://example.com/kek.jpg", received.Messages[0].Content[1].ImageURL.URL)
}

func TestClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error", http.StatusUnauthorized, `{"error":{"message":"Incorrect API key"}}`, "Incorrect API key"},
		{"server error", http.StatusBadGateway, `oops`, "status 502"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "empty model response"},
		{"blank content", http.StatusOK, `{"choices":[{"message":{"content":"   "}}]}`, "empty model response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Generate(context.Background(), &provider.Request{
				Messages: []provider.Message{{Role: provider.RoleUser, Content: "x"}},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_Accessors(t *testing.T) {
	client := NewClient(provider.Config{Model: "gpt-4o-mini", Timeout: time.Second})
	assert.Equal(t, "gpt-4o-mini", client.GetModel())
	assert.Equal(t, time.Second, client.GetTimeout())
	assert.NoError(t, client.Close())
}
