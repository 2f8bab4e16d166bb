package provider

import (
	"context"
	"errors"
	"time"
)

// Roles used in Message.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ErrEmptyResponse is returned when the model answered with no content.
var ErrEmptyResponse = errors.New("empty model response")

// Message is one turn of the conversation sent to the model. ImageURL, when
// set on a user message, is attached as an image part.
type Message struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

// Request is a provider-neutral generation request.
type Request struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Stop        []string  `json:"stop,omitempty"`
}

// Usage reports token accounting when the provider returns it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the model output.
type Response struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// Provider is a remote text-generation backend.
type Provider interface {
	// Generate sends req and returns the first completion.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel returns the model name.
	GetModel() string

	// GetTimeout returns the per-call bound.
	GetTimeout() time.Duration

	// Close releases client resources.
	Close() error
}

// Config configures a provider.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	BaseURL string
}
