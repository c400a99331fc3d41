package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Kind  string // filter by request kind ("" = all)
}

// GenerationEventData captures the data for a single provider call.
type GenerationEventData struct {
	RequestID    string
	Kind         string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// GenerationEvent is a recorded provider call.
type GenerationEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GenerationEventData
}

// KindUsage aggregates token usage per request kind.
type KindUsage struct {
	Kind         string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to generation events.
type EventRepo interface {
	// AppendGeneration records one provider call.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryGenerations returns events, newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)

	// GetGeneration returns one event by ID, or nil if not found.
	GetGeneration(ctx context.Context, id int) (*GenerationEvent, error)

	// UsageByKind aggregates token usage per request kind.
	UsageByKind(ctx context.Context) ([]KindUsage, error)

	// UsageByModel aggregates token usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}
