package imagegen

import (
	"errors"
	"testing"

	"github.com/abhisek/wonderwhiz/internal/llm"
)

func TestService_Generate(t *testing.T) {
	mock := &llm.MockImageProvider{Ref: "data:image/png;base64,aGVsbG8="}
	svc := NewService(mock)

	ref, err := svc.Generate(t.Context(), "a friendly volcano")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != mock.Ref {
		t.Errorf("expected ref %q, got %q", mock.Ref, ref)
	}
	if len(mock.Prompts) != 1 || mock.Prompts[0] != "a friendly volcano" {
		t.Errorf("unexpected recorded prompts %v", mock.Prompts)
	}
}

func TestService_Generate_EmptyPrompt(t *testing.T) {
	mock := &llm.MockImageProvider{Ref: "data:image/png;base64,aGVsbG8="}
	svc := NewService(mock)

	if _, err := svc.Generate(t.Context(), ""); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if len(mock.Prompts) != 0 {
		t.Errorf("expected no provider calls, got %d", len(mock.Prompts))
	}
}

func TestService_Generate_EmptyRef(t *testing.T) {
	mock := &llm.MockImageProvider{Ref: ""}
	svc := NewService(mock)

	_, err := svc.Generate(t.Context(), "a friendly volcano")
	var empty *llm.ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestService_Generate_ProviderError(t *testing.T) {
	want := &llm.ErrTransport{StatusCode: 500, Err: errors.New("boom")}
	mock := &llm.MockImageProvider{Err: want}
	svc := NewService(mock)

	_, err := svc.Generate(t.Context(), "a friendly volcano")
	var transport *llm.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
