package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/wonderwhiz/internal/store"
)

// recordingRepo is an in-memory EventRepo capturing appended events.
type recordingRepo struct {
	events    []store.GenerationEventData
	appendErr error
}

func (r *recordingRepo) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) QueryGenerations(context.Context, store.QueryOpts) ([]store.GenerationEvent, error) {
	return nil, nil
}

func (r *recordingRepo) GetGeneration(context.Context, int) (*store.GenerationEvent, error) {
	return nil, nil
}

func (r *recordingRepo) UsageByKind(context.Context) ([]store.KindUsage, error) {
	return nil, nil
}

func (r *recordingRepo) UsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  `{"ok": true}`,
		Usage: Usage{InputTokens: 100, OutputTokens: 42},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(t.Context(), "topics")
	resp, err := p.Generate(ctx, Request{System: "sys", Prompt: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"ok": true}` {
		t.Errorf("unexpected response text %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Kind != "topics" {
		t.Errorf("expected kind topics, got %q", e.Kind)
	}
	if !e.Success {
		t.Error("expected success")
	}
	if e.InputTokens != 100 || e.OutputTokens != 42 {
		t.Errorf("unexpected token counts: %d in / %d out", e.InputTokens, e.OutputTokens)
	}
	if e.RequestID == "" {
		t.Error("expected a request ID")
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("expected request and response bodies to be captured")
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Err: &ErrTransport{StatusCode: 429, Err: errors.New("rate limited")},
	})
	p := WithLogging(mock, repo)

	_, err := p.Generate(t.Context(), Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message to be captured")
	}
}

func TestLoggingProvider_RepoFailureDoesNotBreakRequest(t *testing.T) {
	repo := &recordingRepo{appendErr: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, repo)

	resp, err := p.Generate(t.Context(), Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("expected request to succeed despite logging failure, got %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("unexpected response %q", resp.Text)
	}
}

func TestLoggingImageProvider_RecordsEvent(t *testing.T) {
	repo := &recordingRepo{}
	mock := &MockImageProvider{Ref: "data:image/png;base64," + strings.Repeat("A", 1000)}
	p := WithImageLogging(mock, repo)

	ctx := WithPurpose(t.Context(), "image")
	ref, err := p.GenerateImage(ctx, "a friendly volcano")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != mock.Ref {
		t.Errorf("expected ref to pass through unmodified")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Kind != "image" {
		t.Errorf("expected kind image, got %q", e.Kind)
	}
	if !e.Success {
		t.Error("expected success")
	}
	if !strings.Contains(e.RequestBody, "a friendly volcano") {
		t.Error("expected prompt in request body")
	}
	// The stored body is a bounded prefix; the returned ref is not.
	if len(e.ResponseBody) >= len(ref) {
		t.Errorf("expected truncated response body, got %d bytes", len(e.ResponseBody))
	}
}

func TestLoggingImageProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := &MockImageProvider{Err: &ErrTransport{StatusCode: 500, Err: errors.New("boom")}}
	p := WithImageLogging(mock, repo)

	if _, err := p.GenerateImage(t.Context(), "a friendly volcano"); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	if repo.events[0].Success {
		t.Error("expected failure event")
	}
	if repo.events[0].ErrorMessage == "" {
		t.Error("expected error message to be captured")
	}
}

func TestMockProvider_FIFOAndExhaustion(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	r1, _ := mock.Generate(t.Context(), Request{Prompt: "a"})
	r2, _ := mock.Generate(t.Context(), Request{Prompt: "b"})
	if r1.Text != "first" || r2.Text != "second" {
		t.Errorf("expected FIFO order, got %q then %q", r1.Text, r2.Text)
	}

	_, err := mock.Generate(t.Context(), Request{Prompt: "c"})
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Errorf("expected ErrEmptyResponse on exhausted queue, got %v", err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("expected 3 recorded calls, got %d", mock.CallCount())
	}
}
