// Package chat generates free-form conversational replies for the chat
// surface. Unlike contentgen there is no JSON contract: the reply is prose
// shown directly in a chat bubble, plus follow-up suggestions derived from
// the reply text itself.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/wonderwhiz/internal/agegroup"
	"github.com/abhisek/wonderwhiz/internal/llm"
)

const chatSystemPrompt = `You are WonderWhiz, a friendly and educational companion for children. Keep every reply age-appropriate, engaging, and encouraging. Spark curiosity and learning. Never use language unsuitable for a child.`

// Input is one chat turn.
type Input struct {
	// Message is the child's message.
	Message string

	// Age is the caller-supplied child age; non-positive resolves to the
	// default age.
	Age int

	// Context is the rolling transcript context (the caller decides how
	// much history to carry; the UI sends the last few messages joined).
	Context string
}

// Reply is a generated chat response.
type Reply struct {
	// Text is the reply prose.
	Text string

	// Suggestions are up to 3 follow-up prompts derived from the reply.
	Suggestions []string
}

// Config holds chat generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for chat replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

// Service generates chat replies.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a chat service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Reply generates one reply for the given turn. One provider call, no
// retries; provider failures surface unwrapped for the caller to classify.
func (s *Service) Reply(ctx context.Context, input Input) (*Reply, error) {
	if input.Message == "" {
		return nil, errors.New("chat message must not be empty")
	}

	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Prompt:      buildUserMessage(input),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Text:        resp.Text,
		Suggestions: deriveSuggestions(resp.Text),
	}, nil
}

func buildUserMessage(input Input) string {
	profile := agegroup.Resolve(input.Age)

	var b strings.Builder

	fmt.Fprintf(&b, "The reader is %s years old.\n", profile.Label)
	fmt.Fprintf(&b, "Tone: %s\n", profile.Tone)
	fmt.Fprintf(&b, "Complexity: %s\n", profile.Complexity)

	b.WriteString("\nPrevious context: ")
	if input.Context == "" {
		b.WriteString("None")
	} else {
		b.WriteString(input.Context)
	}

	b.WriteString("\n\nUser message: ")
	b.WriteString(input.Message)
	b.WriteString("\n\nRespond in a friendly, encouraging way that sparks curiosity and learning.")

	return b.String()
}

// deriveSuggestions extracts up to 3 follow-up prompts from the reply by
// picking its substantial sentences. Short fragments are skipped.
func deriveSuggestions(text string) []string {
	var suggestions []string
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 {
			continue
		}
		suggestions = append(suggestions, "Tell me more about "+strings.ToLower(sentence))
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}
