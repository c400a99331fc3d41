// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/wonderwhiz/ent/generationevent"
	"github.com/abhisek/wonderwhiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescInputTokens is the schema descriptor for input_tokens field.
	generationeventDescInputTokens := generationeventFields[4].Descriptor()
	// generationevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	generationevent.DefaultInputTokens = generationeventDescInputTokens.Default.(int)
	// generationeventDescOutputTokens is the schema descriptor for output_tokens field.
	generationeventDescOutputTokens := generationeventFields[5].Descriptor()
	// generationevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	generationevent.DefaultOutputTokens = generationeventDescOutputTokens.Default.(int)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[6].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[8].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	// generationeventDescRequestBody is the schema descriptor for request_body field.
	generationeventDescRequestBody := generationeventFields[9].Descriptor()
	// generationevent.DefaultRequestBody holds the default value on creation for the request_body field.
	generationevent.DefaultRequestBody = generationeventDescRequestBody.Default.(string)
	// generationeventDescResponseBody is the schema descriptor for response_body field.
	generationeventDescResponseBody := generationeventFields[10].Descriptor()
	// generationevent.DefaultResponseBody holds the default value on creation for the response_body field.
	generationevent.DefaultResponseBody = generationeventDescResponseBody.Default.(string)
}
