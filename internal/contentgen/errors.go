package contentgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/wonderwhiz/internal/llm"
)

// Top-level shape mismatches reported through ErrMalformedJSON.
var (
	errNotArray  = errors.New("expected a JSON array")
	errNotObject = errors.New("expected a JSON object")
)

// Validation error taxonomy. The validator never coerces or truncates to
// fit: every schema violation surfaces as one of these, wrapped in a
// GenerationError at the service boundary.

// ErrMalformedJSON indicates the sanitized text could not be parsed as the
// JSON shape requested. Snippet carries enough of the offending text for
// diagnosis; the parsed value is never returned to the caller.
type ErrMalformedJSON struct {
	Snippet string
	Err     error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v (got %q)", e.Err, e.Snippet)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ErrMissingField indicates a required field is absent, wrong-typed, or
// empty. Index is the element position for array payloads, -1 for a
// single-object payload.
type ErrMissingField struct {
	Index int
	Field string
}

func (e *ErrMissingField) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("element %d: missing or invalid field %q", e.Index, e.Field)
	}
	return fmt.Sprintf("missing or invalid field %q", e.Field)
}

// ErrInvalidEnum indicates a field's value falls outside its closed set of
// allowed literals.
type ErrInvalidEnum struct {
	Index int
	Field string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("element %d: field %q has invalid value %q", e.Index, e.Field, e.Value)
	}
	return fmt.Sprintf("field %q has invalid value %q", e.Field, e.Value)
}

// ErrWrongArity indicates an array field does not have its contracted
// exact length.
type ErrWrongArity struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrWrongArity) Error() string {
	return fmt.Sprintf("field %q must have exactly %d entries, got %d", e.Field, e.Expected, e.Actual)
}

// ErrOutOfRange indicates a numeric field falls outside its allowed range.
type ErrOutOfRange struct {
	Index int
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("element %d: field %q is %d, must be between %d and %d",
		e.Index, e.Field, e.Value, e.Min, e.Max)
}

// ErrBatchSize indicates a topics batch is outside the allowed element count.
type ErrBatchSize struct {
	Actual int
	Min    int
	Max    int
}

func (e *ErrBatchSize) Error() string {
	return fmt.Sprintf("expected between %d and %d topics, got %d", e.Min, e.Max, e.Actual)
}

// ErrSchemaViolation indicates the payload passed the field checks but
// failed the compiled JSON-schema conformance backstop.
type ErrSchemaViolation struct {
	Schema string
	Err    error
}

func (e *ErrSchemaViolation) Error() string {
	return fmt.Sprintf("response violates schema %q: %v", e.Schema, e.Err)
}

func (e *ErrSchemaViolation) Unwrap() error { return e.Err }

// GenerationError is the single error type crossing the service boundary.
// Kind is machine-readable; Message is safe to show a child verbatim. The
// underlying provider or validation error is reachable via errors.As.
type GenerationError struct {
	Kind    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Error kinds carried by GenerationError.
const (
	KindMissingCredentials = "missing_credentials"
	KindTransport          = "transport_failure"
	KindEmptyResponse      = "empty_response"
	KindMalformedJSON      = "malformed_json"
	KindMissingField       = "missing_field"
	KindInvalidEnum        = "invalid_enum"
	KindWrongArity         = "wrong_arity"
	KindOutOfRange         = "out_of_range"
	KindBatchSize          = "batch_size"
	KindSchemaViolation    = "schema_violation"
	KindBadRequest         = "bad_request"
)

const retryMessage = "Hmm, that didn't come out quite right. Let's try again!"

// wrapError classifies err into a GenerationError with a child-safe message.
func wrapError(err error) *GenerationError {
	var (
		missingCreds *llm.ErrMissingCredentials
		transport    *llm.ErrTransport
		empty        *llm.ErrEmptyResponse
		malformed    *ErrMalformedJSON
		missingField *ErrMissingField
		invalidEnum  *ErrInvalidEnum
		wrongArity   *ErrWrongArity
		outOfRange   *ErrOutOfRange
		batchSize    *ErrBatchSize
		schemaViol   *ErrSchemaViolation
	)

	switch {
	case errors.As(err, &missingCreds):
		return &GenerationError{
			Kind:    KindMissingCredentials,
			Message: "WonderWhiz isn't set up yet. Ask a grown-up to check the settings!",
			Err:     err,
		}
	case errors.As(err, &transport):
		return &GenerationError{
			Kind:    KindTransport,
			Message: "We couldn't reach the wonder machine. Let's try again in a moment!",
			Err:     err,
		}
	case errors.As(err, &empty):
		return &GenerationError{Kind: KindEmptyResponse, Message: retryMessage, Err: err}
	case errors.As(err, &malformed):
		return &GenerationError{Kind: KindMalformedJSON, Message: retryMessage, Err: err}
	case errors.As(err, &missingField):
		return &GenerationError{Kind: KindMissingField, Message: retryMessage, Err: err}
	case errors.As(err, &invalidEnum):
		return &GenerationError{Kind: KindInvalidEnum, Message: retryMessage, Err: err}
	case errors.As(err, &wrongArity):
		return &GenerationError{Kind: KindWrongArity, Message: retryMessage, Err: err}
	case errors.As(err, &outOfRange):
		return &GenerationError{Kind: KindOutOfRange, Message: retryMessage, Err: err}
	case errors.As(err, &batchSize):
		return &GenerationError{Kind: KindBatchSize, Message: retryMessage, Err: err}
	case errors.As(err, &schemaViol):
		return &GenerationError{Kind: KindSchemaViolation, Message: retryMessage, Err: err}
	}

	return &GenerationError{Kind: KindTransport, Message: retryMessage, Err: err}
}
