package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/core/image"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

// Client is a provider backed by the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a Gemini client. BaseURL, when set, overrides the API
// endpoint.
func NewClient(ctx context.Context, cfg provider.Config) (*Client, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

// Generate maps system messages to the system instruction and everything
// else to prompt parts.
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(float32(req.Temperature))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	model.StopSequences = req.Stop

	system, parts := splitMessages(req.Messages)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	content := strings.TrimSpace(responseText(resp))
	if content == "" {
		return nil, provider.ErrEmptyResponse
	}

	out := &provider.Response{Content: content}
	if resp.UsageMetadata != nil {
		out.Usage = provider.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// splitMessages joins system messages into one instruction. Inline JPEG
// images are sent as blobs; remote URLs are passed as text since the API only
// accepts inline bytes or uploaded files.
func splitMessages(messages []provider.Message) (string, []genai.Part) {
	var system []string
	var parts []genai.Part
	for _, m := range messages {
		if m.Role == provider.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		parts = append(parts, genai.Text(m.Content))
		if m.ImageURL == "" {
			continue
		}
		if data, ok := image.InlineJPEG(m.ImageURL); ok {
			parts = append(parts, genai.ImageData("jpeg", data))
		} else {
			parts = append(parts, genai.Text("Fotoğraf: "+m.ImageURL))
		}
	}
	return strings.Join(system, "\n\n"), parts
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// GetModel returns the configured model.
func (c *Client) GetModel() string {
	return c.model
}

// GetTimeout returns the per-call timeout.
func (c *Client) GetTimeout() time.Duration {
	return c.timeout
}

// Close closes the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}
