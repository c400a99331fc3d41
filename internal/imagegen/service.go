// Package imagegen wraps the image-generation provider boundary.
//
// Structurally the same invoke path as content generation, but there is no
// JSON schema: success is "the provider returned a non-empty reference",
// failure is any credential, transport, or empty-response condition.
package imagegen

import (
	"context"
	"errors"

	"github.com/abhisek/wonderwhiz/internal/llm"
)

// Service generates a single opaque image reference per request.
type Service struct {
	provider llm.ImageProvider
}

// NewService creates an image generation service.
func NewService(provider llm.ImageProvider) *Service {
	return &Service{provider: provider}
}

// Generate returns an image reference (a data URL for the built-in
// backends) for the given free-text prompt. Exactly one provider call; no
// retries. An empty reference from the provider is reported as
// llm.ErrEmptyResponse.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("image prompt must not be empty")
	}

	ctx = llm.WithPurpose(ctx, "image")

	ref, err := s.provider.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}
	if ref == "" {
		return "", &llm.ErrEmptyResponse{Model: s.provider.ModelID()}
	}

	return ref, nil
}
