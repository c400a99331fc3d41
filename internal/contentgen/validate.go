package contentgen

import (
	"encoding/json"
	"math"
)

// The validator enforces the per-kind shape with no auto-repair: a
// violation always surfaces as a typed failure, never a coerced or
// truncated value. A topics batch is rejected wholesale on one bad element
// because the UI assumes a uniformly well-formed list.
//
// Field checks run first so failures carry the precise taxonomy
// (ErrMissingField, ErrInvalidEnum, ...); the compiled JSON-schema
// conformance check runs last as a backstop for anything the field checks
// don't cover.

// snippetLen bounds how much offending text a parse error carries.
const snippetLen = 120

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	return s[:snippetLen] + "..."
}

// ValidateTopics parses sanitized text as a topics batch and checks every
// element against the Topic contract.
func ValidateTopics(clean string) ([]Topic, error) {
	var doc any
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, &ErrMalformedJSON{Snippet: snippet(clean), Err: err}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &ErrMalformedJSON{
			Snippet: snippet(clean),
			Err:     errNotArray,
		}
	}

	if len(items) < minTopics || len(items) > maxTopics {
		return nil, &ErrBatchSize{Actual: len(items), Min: minTopics, Max: maxTopics}
	}

	topics := make([]Topic, 0, len(items))
	for i, el := range items {
		obj, ok := el.(map[string]any)
		if !ok {
			// A non-object element is missing every field; report the first.
			return nil, &ErrMissingField{Index: i, Field: "title"}
		}

		title, ok := stringField(obj, "title")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "title"}
		}
		description, ok := stringField(obj, "description")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "description"}
		}
		icon, ok := stringField(obj, "icon")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "icon"}
		}

		points, ok := intField(obj, "points")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "points"}
		}
		if points < minPoints || points > maxPoints {
			return nil, &ErrOutOfRange{
				Index: i, Field: "points", Value: points,
				Min: minPoints, Max: maxPoints,
			}
		}

		difficulty, ok := stringField(obj, "difficulty")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "difficulty"}
		}
		if !validDifficulty(difficulty) {
			return nil, &ErrInvalidEnum{Index: i, Field: "difficulty", Value: difficulty}
		}

		topics = append(topics, Topic{
			Title:       title,
			Description: description,
			Points:      points,
			Difficulty:  Difficulty(difficulty),
			Icon:        icon,
		})
	}

	if err := checkSchema(topicsSchema, doc); err != nil {
		return nil, err
	}

	return topics, nil
}

// ValidateContent parses sanitized text as a deep-dive object and checks
// it against the ContentDetails contract, including the exact-3
// cardinality of facts and followUpQuestions.
func ValidateContent(clean string) (*ContentDetails, error) {
	var doc any
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, &ErrMalformedJSON{Snippet: snippet(clean), Err: err}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &ErrMalformedJSON{
			Snippet: snippet(clean),
			Err:     errNotObject,
		}
	}

	explanation, ok := stringField(obj, "explanation")
	if !ok {
		return nil, &ErrMissingField{Index: -1, Field: "explanation"}
	}

	facts, err := exactStrings(obj, "facts")
	if err != nil {
		return nil, err
	}
	questions, err := exactStrings(obj, "followUpQuestions")
	if err != nil {
		return nil, err
	}

	details := &ContentDetails{
		Explanation:       explanation,
		Facts:             facts,
		FollowUpQuestions: questions,
	}

	if raw, present := obj["relatedTopics"]; present && raw != nil {
		related, err := relatedTopics(raw)
		if err != nil {
			return nil, err
		}
		details.RelatedTopics = related
	}

	if err := checkSchema(contentSchema, doc); err != nil {
		return nil, err
	}

	return details, nil
}

// exactStrings extracts an array field that must hold exactly 3 non-empty
// strings. The fixed cardinality is a hard contract: the presentation
// layer indexes these positionally.
func exactStrings(obj map[string]any, field string) ([]string, error) {
	raw, ok := obj[field].([]any)
	if !ok {
		return nil, &ErrMissingField{Index: -1, Field: field}
	}
	if len(raw) != 3 {
		return nil, &ErrWrongArity{Field: field, Expected: 3, Actual: len(raw)}
	}

	out := make([]string, 3)
	for i, el := range raw {
		s, ok := el.(string)
		if !ok || s == "" {
			return nil, &ErrMissingField{Index: i, Field: field}
		}
		out[i] = s
	}
	return out, nil
}

// relatedTopics validates the optional relatedTopics array.
func relatedTopics(raw any) ([]RelatedTopic, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, &ErrMissingField{Index: -1, Field: "relatedTopics"}
	}

	out := make([]RelatedTopic, 0, len(items))
	for i, el := range items {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "relatedTopics.title"}
		}

		title, ok := stringField(obj, "title")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "relatedTopics.title"}
		}
		description, ok := stringField(obj, "description")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "relatedTopics.description"}
		}
		difficulty, ok := stringField(obj, "difficulty")
		if !ok {
			return nil, &ErrMissingField{Index: i, Field: "relatedTopics.difficulty"}
		}
		if !validDifficulty(difficulty) {
			return nil, &ErrInvalidEnum{Index: i, Field: "relatedTopics.difficulty", Value: difficulty}
		}

		out = append(out, RelatedTopic{
			Title:       title,
			Description: description,
			Difficulty:  Difficulty(difficulty),
		})
	}
	return out, nil
}

// stringField returns the named field when it is a non-empty string.
func stringField(obj map[string]any, field string) (string, bool) {
	s, ok := obj[field].(string)
	return s, ok && s != ""
}

// intField returns the named field when it is an integral JSON number.
func intField(obj map[string]any, field string) (int, bool) {
	f, ok := obj[field].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func validDifficulty(s string) bool {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
