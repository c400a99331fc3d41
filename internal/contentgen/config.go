package contentgen

// Config controls generation behavior.
type Config struct {
	// MaxTokens is the token budget for the provider response.
	MaxTokens int

	// Temperature controls provider output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended defaults. Temperature is kept fairly
// high: topic suggestions should vary between requests.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}
