package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEvent(kind string) GenerationEventData {
	return GenerationEventData{
		RequestID:    "req-" + kind,
		Kind:         kind,
		Provider:     "mock",
		Model:        "mock",
		InputTokens:  100,
		OutputTokens: 40,
		LatencyMs:    250,
		Success:      true,
		RequestBody:  "[user]\nhello",
		ResponseBody: `{"ok": true}`,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryGenerations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, kind := range []string{"topics", "content", "topics"} {
		if err := repo.AppendGeneration(ctx, testEvent(kind)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	filtered, err := repo.QueryGenerations(ctx, QueryOpts{Kind: "topics"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 topics events, got %d", len(filtered))
	}

	limited, err := repo.QueryGenerations(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestGetGeneration(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendGeneration(ctx, testEvent("topics")); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetGeneration(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.RequestID != "req-topics" {
		t.Errorf("request_id = %q, want %q", got.RequestID, "req-topics")
	}
	if got.ResponseBody != `{"ok": true}` {
		t.Errorf("response_body = %q", got.ResponseBody)
	}

	missing, err := repo.GetGeneration(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, kind := range []string{"topics", "topics", "content"} {
		if err := repo.AppendGeneration(ctx, testEvent(kind)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byKind, err := repo.UsageByKind(ctx)
	if err != nil {
		t.Fatalf("usage by kind: %v", err)
	}
	if len(byKind) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(byKind))
	}
	for _, u := range byKind {
		switch u.Kind {
		case "topics":
			if u.Calls != 2 {
				t.Errorf("topics calls = %d, want 2", u.Calls)
			}
			if u.InputTokens != 200 {
				t.Errorf("topics input tokens = %d, want 200", u.InputTokens)
			}
		case "content":
			if u.Calls != 1 {
				t.Errorf("content calls = %d, want 1", u.Calls)
			}
		default:
			t.Errorf("unexpected kind %q", u.Kind)
		}
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("expected 1 model, got %d", len(byModel))
	}
	if byModel[0].Calls != 3 {
		t.Errorf("model calls = %d, want 3", byModel[0].Calls)
	}
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Errorf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}
