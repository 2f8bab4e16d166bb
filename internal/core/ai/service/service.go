package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recipe-transformer/internal/core/ai/cache"
	"recipe-transformer/internal/core/ai/provider"
	"recipe-transformer/internal/core/ai/queue"
	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrNotConfigured means no model credentials were supplied. Callers use
// their deterministic path.
var ErrNotConfigured = errors.New("model not configured")

// Service is the remote text-generation adapter. A Service built without a
// provider is the unconfigured variant: every call fails fast with
// ErrNotConfigured.
type Service struct {
	provider provider.Provider
	cache    cache.Store
	queue    *queue.Manager
}

// Option customizes a Service.
type Option func(*Service)

// WithCache serves repeated requests from store.
func WithCache(store cache.Store) Option {
	return func(s *Service) { s.cache = store }
}

// WithQueue routes calls through a bounded worker pool.
func WithQueue(q *queue.Manager) Option {
	return func(s *Service) { s.queue = q }
}

// NewService creates the adapter. p may be nil.
func NewService(p provider.Provider, opts ...Option) *Service {
	s := &Service{provider: p}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether model calls will be attempted.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// Model returns the configured model name, or "" when unconfigured.
func (s *Service) Model() string {
	if !s.Available() {
		return ""
	}
	return s.provider.GetModel()
}

// Complete returns the model's text for req. operation labels the call in
// logs.
func (s *Service) Complete(ctx context.Context, operation string, req *provider.Request) (string, error) {
	if !s.Available() {
		return "", ErrNotConfigured
	}

	key := s.cacheKey(req)
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, key); err == nil {
			return val, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			common.LogWarn("Cache lookup failed", zap.String("operation", operation), zap.Error(err))
		}
	}

	start := time.Now()
	resp, err := s.generate(ctx, req)
	common.LogAICall(operation, s.provider.GetModel(), time.Since(start), err)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp.Content); err != nil {
			common.LogWarn("Cache store failed", zap.String("operation", operation), zap.Error(err))
		}
	}

	return resp.Content, nil
}

// CompleteJSON runs Complete and decodes the first JSON object in the reply
// into v.
func (s *Service) CompleteJSON(ctx context.Context, operation string, req *provider.Request, v interface{}) error {
	content, err := s.Complete(ctx, operation, req)
	if err != nil {
		return err
	}
	if err := common.DecodeModelJSON(content, v); err != nil {
		common.LogDebug("Model reply was not usable JSON",
			zap.String("operation", operation),
			zap.Int("length", len(content)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Service) generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if timeout := s.provider.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if s.queue == nil {
		return s.provider.Generate(ctx, req)
	}

	var resp *provider.Response
	err := s.queue.Submit(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.provider.Generate(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("queued model call: %w", err)
	}
	return resp, nil
}

func (s *Service) cacheKey(req *provider.Request) string {
	parts := []string{
		s.provider.GetModel(),
		strconv.FormatFloat(req.Temperature, 'f', -1, 64),
		strconv.Itoa(req.MaxTokens),
		strings.Join(req.Stop, "\x1f"),
	}
	for _, m := range req.Messages {
		parts = append(parts, m.Role, m.Content, m.ImageURL)
	}
	return cache.Key(parts...)
}

// Close releases the provider.
func (s *Service) Close() error {
	if !s.Available() {
		return nil
	}
	return s.provider.Close()
}

// LogFallback records why a caller switched to its rule-based path.
func LogFallback(operation string, err error) {
	if errors.Is(err, ErrNotConfigured) {
		common.LogDebug("Model not configured, using fallback", zap.String("operation", operation))
		return
	}
	common.LogWarn("Model path failed, using fallback",
		zap.String("operation", operation),
		zap.Error(err),
	)
}
