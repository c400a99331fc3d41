package llm

import "fmt"

// ErrMissingCredentials indicates the selected provider's API key is not
// configured. Raised before any network call is attempted; fatal, never
// retryable.
type ErrMissingCredentials struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingCredentials) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("%s API key is not configured (set %s)", e.Provider, e.EnvVar)
	}
	return fmt.Sprintf("%s API key is not configured", e.Provider)
}

// ErrTransport indicates a network or HTTP failure reaching the provider,
// including rate limits and server errors. The caller may choose to
// re-issue the request.
type ErrTransport struct {
	StatusCode int // 0 when the failure happened below HTTP
	Err        error
}

func (e *ErrTransport) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider transport failure (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider transport failure: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider call succeeded at the transport
// level but returned no usable output.
type ErrEmptyResponse struct {
	Model string
}

func (e *ErrEmptyResponse) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("model %s returned an empty response", e.Model)
	}
	return "model returned an empty response"
}
