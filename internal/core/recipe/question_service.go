package recipe

import (
	"context"
	"strings"

	"recipe-transformer/internal/core/ai/service"
	"recipe-transformer/internal/pkg/common"

	"go.uber.org/zap"
)

const unknownRecipeTitle = "Bilinmeyen tarif"

// ImagePreparer converts a photo reference into an inline image the model
// can read.
type ImagePreparer interface {
	Prepare(ctx context.Context, ref string) (string, error)
}

// QuestionService answers free-text questions about a single recipe.
type QuestionService struct {
	ai     Generator
	images ImagePreparer
}

// QuestionOption customizes a QuestionService.
type QuestionOption func(*QuestionService)

// WithImagePreparer inlines recipe photos before they are sent to the model.
func WithImagePreparer(p ImagePreparer) QuestionOption {
	return func(s *QuestionService) { s.images = p }
}

// NewQuestionService creates the service. ai may be an unconfigured adapter.
func NewQuestionService(ai Generator, opts ...QuestionOption) *QuestionService {
	s := &QuestionService{ai: ai}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask returns the model's answer, or a plain summary of the recipe when the
// model is unavailable or fails.
func (s *QuestionService) Ask(ctx context.Context, r common.Recipe, question, imageURL string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	const operation = "ask_question"
	if s.ai == nil || !s.ai.Available() {
		service.LogFallback(operation, service.ErrNotConfigured)
		return Summary(r), nil
	}

	imageURL = strings.TrimSpace(imageURL)
	answer, err := s.ai.Complete(ctx, operation, questionPrompt(r, question, imageURL, s.inlineImage(ctx, imageURL)))
	if err != nil {
		service.LogFallback(operation, err)
		return Summary(r), nil
	}
	return strings.TrimSpace(answer), nil
}

// inlineImage returns the image to attach for ref. Photos that cannot be
// prepared are dropped; the question is still answered from the text.
func (s *QuestionService) inlineImage(ctx context.Context, ref string) string {
	if ref == "" || s.images == nil {
		return ref
	}
	inline, err := s.images.Prepare(ctx, ref)
	if err != nil {
		common.LogWarn("Recipe photo skipped", zap.Error(err))
		return ""
	}
	return inline
}

// Summary renders the recipe as a short Turkish overview.
func Summary(r common.Recipe) string {
	title := r.Title
	if title == "" {
		title = unknownRecipeTitle
	}

	lines := []string{
		"Bu cevap akıllı asistan olmadan oluşturuldu, ama tarif bilgilerini özetleyebilirim.",
		"\nTarif: " + title,
	}
	if r.Portions > 0 {
		lines = append(lines, "Porsiyon: "+common.FormatNumber(r.Portions))
	}
	if r.Ingredients != nil {
		lines = append(lines, "\nMalzemeler:")
		if len(r.Ingredients) > 0 {
			lines = append(lines, common.FormatBulleted(r.Ingredients))
		}
	}
	if r.Steps != nil {
		lines = append(lines, "\nAdımlar:")
		if len(r.Steps) > 0 {
			lines = append(lines, common.FormatNumbered(r.Steps))
		}
	}
	return strings.Join(lines, "\n")
}
