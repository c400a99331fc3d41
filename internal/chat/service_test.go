package chat

import (
	"strings"
	"testing"

	"github.com/abhisek/wonderwhiz/internal/llm"
)

func TestService_Reply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Volcanoes are mountains that can erupt with melted rock called lava. The lava comes from deep inside the Earth where it is very hot. Short.",
	})
	svc := NewService(mock, DefaultConfig())

	reply, err := svc.Reply(t.Context(), Input{Message: "What is a volcano?", Age: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Text == "" {
		t.Fatal("expected reply text")
	}
	if len(reply.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions (short fragment skipped), got %d", len(reply.Suggestions))
	}
	for _, s := range reply.Suggestions {
		if !strings.HasPrefix(s, "Tell me more about ") {
			t.Errorf("unexpected suggestion shape %q", s)
		}
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Prompt, "What is a volcano?") {
		t.Error("expected user message in prompt")
	}
	if !strings.Contains(req.Prompt, "8-10") {
		t.Error("expected age bracket in prompt")
	}
	if !strings.Contains(req.Prompt, "Previous context: None") {
		t.Error("expected explicit empty context marker")
	}
}

func TestService_Reply_CarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Great question!"})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Reply(t.Context(), Input{
		Message: "Why?",
		Age:     9,
		Context: "We were talking about volcanoes.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Prompt, "We were talking about volcanoes.") {
		t.Error("expected context in prompt")
	}
}

func TestService_Reply_EmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Reply(t.Context(), Input{Age: 9}); err == nil {
		t.Fatal("expected error for empty message")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestDeriveSuggestions_CapsAtThree(t *testing.T) {
	text := strings.Repeat("This sentence is long enough to become a suggestion. ", 5)
	got := deriveSuggestions(text)
	if len(got) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(got))
	}
}

func TestDeriveSuggestions_SkipsShortFragments(t *testing.T) {
	if got := deriveSuggestions("Hi. Ok. No."); got != nil {
		t.Errorf("expected no suggestions, got %v", got)
	}
}
