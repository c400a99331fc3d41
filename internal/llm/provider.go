package llm

import "context"

// Provider is the core abstraction for text generation.
// Consumers send a fully-rendered prompt and receive the provider's raw
// text. No structured-output mechanism is assumed: the prompt itself
// carries the format contract, and callers sanitize and validate the raw
// text downstream. Exactly one outbound call per Generate; retries, if
// any, belong to the caller.
type Provider interface {
	// Generate sends a prompt to the model and returns its raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// ImageProvider generates a single image for a free-text prompt.
// The returned reference is an opaque string (a data URL for the built-in
// backends); success is "reference present", nothing more.
type ImageProvider interface {
	// GenerateImage returns a non-empty image reference or an error.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// ModelID returns the image model identifier.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Prompt is the user message. Generation here is single-turn; any
	// conversational context is rendered into the prompt by the caller.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text, untrusted and unparsed. Callers must
	// treat it as free text until it has passed sanitization and validation.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
