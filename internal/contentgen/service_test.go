package contentgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/wonderwhiz/internal/llm"
)

func TestService_GenerateTopics(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "```json\n" + validTopicsJSON + "\n```",
	})
	svc := NewService(mock, DefaultConfig())

	topics, err := svc.GenerateTopics(t.Context(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly 1 provider call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.System == "" {
		t.Error("expected system prompt to be set")
	}
	if !strings.Contains(req.Prompt, "8-10") {
		t.Errorf("expected prompt to carry age bracket 8-10, got:\n%s", req.Prompt)
	}
}

func TestService_GenerateTopics_AgeShapesPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: validTopicsJSON},
		llm.MockResponse{Text: validTopicsJSON},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateTopics(t.Context(), 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GenerateTopics(t.Context(), 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.Calls[0].Prompt == mock.Calls[1].Prompt {
		t.Error("expected different prompts for ages 6 and 15")
	}
	if !strings.Contains(mock.Calls[0].Prompt, "5-7") {
		t.Error("expected age-6 prompt to carry bracket 5-7")
	}
	if !strings.Contains(mock.Calls[1].Prompt, "14-16") {
		t.Error("expected age-15 prompt to carry bracket 14-16")
	}
}

func TestService_GenerateTopics_ValidationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `{"mood": "confused"}`,
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateTopics(t.Context(), 8)

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Kind != KindMalformedJSON {
		t.Errorf("expected kind %q, got %q", KindMalformedJSON, genErr.Kind)
	}
	if genErr.Message == "" {
		t.Error("expected a child-safe message")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call (no internal retries), got %d", mock.CallCount())
	}
}

func TestService_GenerateTopics_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTransport{StatusCode: 503, Err: errors.New("service unavailable")},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateTopics(t.Context(), 8)

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Kind != KindTransport {
		t.Errorf("expected kind %q, got %q", KindTransport, genErr.Kind)
	}

	var transport *llm.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatal("expected underlying transport error to be reachable")
	}
	if transport.StatusCode != 503 {
		t.Errorf("expected status 503, got %d", transport.StatusCode)
	}
}

func TestService_GenerateContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "```json\n" + validContentJSON + "\n```",
	})
	svc := NewService(mock, DefaultConfig())

	details, err := svc.GenerateContent(t.Context(), 10, "Rainbows")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Facts) != 3 {
		t.Errorf("expected 3 facts, got %d", len(details.Facts))
	}
	if !strings.Contains(mock.Calls[0].Prompt, "Rainbows") {
		t.Error("expected topic to appear in prompt")
	}
}

func TestService_GenerateContent_EmptyTopic(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateContent(t.Context(), 10, "")

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Kind != KindBadRequest {
		t.Errorf("expected kind %q, got %q", KindBadRequest, genErr.Kind)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls for a bad request, got %d", mock.CallCount())
	}
}

func TestService_Generate_Dispatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: validTopicsJSON},
		llm.MockResponse{Text: validContentJSON},
	)
	svc := NewService(mock, DefaultConfig())

	topics, details, err := svc.Generate(t.Context(), Request{Kind: KindTopics, Age: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) == 0 || details != nil {
		t.Error("expected topics and no details for KindTopics")
	}

	topics, details, err = svc.Generate(t.Context(), Request{Kind: KindContent, Age: 8, Topic: "Volcanoes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topics != nil || details == nil {
		t.Error("expected details and no topics for KindContent")
	}
}

func TestService_Generate_UnknownKind(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	_, _, err := svc.Generate(t.Context(), Request{Kind: "quiz", Age: 8})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Kind != KindBadRequest {
		t.Errorf("expected kind %q, got %q", KindBadRequest, genErr.Kind)
	}
}
