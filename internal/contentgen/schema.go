package contentgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema pairs a JSON Schema definition with a name used for
// compile caching and error reporting.
type responseSchema struct {
	name       string
	definition map[string]any
}

// Batch bounds for a topics response.
const (
	minTopics = 3
	maxTopics = 6
)

// Points bounds for a single topic.
const (
	minPoints = 5
	maxPoints = 20
)

var difficultyEnum = []any{"Easy", "Medium", "Hard"}

// topicsSchema is the canonical shape of a topics batch. The field checks
// in validate.go enforce the same contract with finer-grained errors; this
// definition is the conformance backstop.
var topicsSchema = &responseSchema{
	name: "topic-batch",
	definition: map[string]any{
		"type":     "array",
		"minItems": minTopics,
		"maxItems": maxTopics,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string", "minLength": 1},
				"points":      map[string]any{"type": "integer", "minimum": minPoints, "maximum": maxPoints},
				"difficulty":  map[string]any{"type": "string", "enum": difficultyEnum},
				"icon":        map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"title", "description", "points", "difficulty", "icon"},
		},
	},
}

// contentSchema is the canonical shape of a deep-dive response.
var contentSchema = &responseSchema{
	name: "content-details",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{"type": "string", "minLength": 1},
			"facts": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"followUpQuestions": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"relatedTopics": map[string]any{
				"type":     "array",
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string", "minLength": 1},
						"difficulty":  map[string]any{"type": "string", "enum": difficultyEnum},
					},
					"required": []any{"title", "description", "difficulty"},
				},
			},
		},
		"required": []any{"explanation", "facts", "followUpQuestions"},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// checkSchema validates an already-parsed JSON document against the given
// schema definition. Returns *ErrSchemaViolation on failure.
func checkSchema(schema *responseSchema, doc any) error {
	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrSchemaViolation{
			Schema: schema.name,
			Err:    fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrSchemaViolation{Schema: schema.name, Err: err}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *responseSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.name, compiled)
	return compiled, nil
}
