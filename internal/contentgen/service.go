package contentgen

import (
	"context"
	"errors"

	"github.com/abhisek/wonderwhiz/internal/agegroup"
	"github.com/abhisek/wonderwhiz/internal/llm"
)

// Service is the single entry point for structured content generation.
// Each call runs resolve profile → synthesize prompt → invoke provider →
// sanitize → validate, short-circuiting on the first failure. Exactly one
// provider call per invocation; the service never retries — a caller that
// wants resilience re-issues the request itself. Calls are independent
// and share no mutable state.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateTopics produces 3-6 validated learning topics for the given age.
// Non-positive ages fall back to the default age. Failures return a
// *GenerationError wrapping the provider or validation cause.
func (s *Service) GenerateTopics(ctx context.Context, age int) ([]Topic, error) {
	ctx = llm.WithPurpose(ctx, string(KindTopics))

	profile := agegroup.Resolve(age)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildTopicsUserMessage(profile),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	topics, err := ValidateTopics(Sanitize(resp.Text))
	if err != nil {
		return nil, wrapError(err)
	}

	return topics, nil
}

// GenerateContent produces a validated deep-dive for one topic at the
// given age. The topic must be non-empty.
func (s *Service) GenerateContent(ctx context.Context, age int, topic string) (*ContentDetails, error) {
	if topic == "" {
		return nil, &GenerationError{
			Kind:    KindBadRequest,
			Message: "Pick a topic first, then we can explore it together!",
			Err:     errors.New("content request requires a non-empty topic"),
		}
	}

	ctx = llm.WithPurpose(ctx, string(KindContent))

	profile := agegroup.Resolve(age)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildContentUserMessage(topic, profile),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	details, err := ValidateContent(Sanitize(resp.Text))
	if err != nil {
		return nil, wrapError(err)
	}

	return details, nil
}

// Generate dispatches a Request to the matching typed method. Exists for
// callers that carry the request kind as data; new code should prefer the
// typed methods.
func (s *Service) Generate(ctx context.Context, req Request) ([]Topic, *ContentDetails, error) {
	switch req.Kind {
	case KindTopics:
		topics, err := s.GenerateTopics(ctx, req.Age)
		return topics, nil, err
	case KindContent:
		details, err := s.GenerateContent(ctx, req.Age, req.Topic)
		return nil, details, err
	}
	return nil, nil, &GenerationError{
		Kind:    KindBadRequest,
		Message: "That request didn't make sense to WonderWhiz.",
		Err:     errors.New("unknown request kind: " + string(req.Kind)),
	}
}
