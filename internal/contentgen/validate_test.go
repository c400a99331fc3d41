package contentgen

import (
	"errors"
	"testing"
)

const validTopicsJSON = `[
  {"title": "Why do rainbows appear after rain?", "description": "Discover the colorful magic of light and water!", "points": 12, "difficulty": "Easy", "icon": "🌈"},
  {"title": "How do volcanoes erupt?", "description": "Journey deep inside the Earth to find out!", "points": 15, "difficulty": "Medium", "icon": "🌋"},
  {"title": "What makes the ocean salty?", "description": "Dive into the salty science of the sea!", "points": 10, "difficulty": "Easy", "icon": "🌊"}
]`

const validContentJSON = `{
  "explanation": "Rainbows appear when sunlight shines through raindrops and splits into its colors.",
  "facts": ["Every rainbow is actually a full circle.", "No two people see exactly the same rainbow.", "Double rainbows flip their colors."],
  "followUpQuestions": ["Can you see a rainbow at night?", "Why is the sky blue?", "What is light made of?"],
  "relatedTopics": [
    {"title": "Why is the sky blue?", "description": "Learn how sunlight paints our sky.", "difficulty": "Easy"}
  ]
}`

func TestValidateTopics_FencedResponse(t *testing.T) {
	clean := Sanitize("```json\n" + validTopicsJSON + "\n```")
	topics, err := ValidateTopics(clean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	if topics[0].Title != "Why do rainbows appear after rain?" {
		t.Errorf("unexpected first title %q", topics[0].Title)
	}
	if topics[0].Points != 12 {
		t.Errorf("expected points 12, got %d", topics[0].Points)
	}
	if topics[1].Difficulty != DifficultyMedium {
		t.Errorf("expected difficulty Medium, got %q", topics[1].Difficulty)
	}
}

func TestValidateTopics_MalformedJSON(t *testing.T) {
	_, err := ValidateTopics(`[{"title": "oops"`)
	var malformed *ErrMalformedJSON
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
	if malformed.Snippet == "" {
		t.Error("expected snippet of the offending text")
	}
}

func TestValidateTopics_ObjectInsteadOfArray(t *testing.T) {
	_, err := ValidateTopics(validContentJSON)
	var malformed *ErrMalformedJSON
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestValidateTopics_BatchTooSmall(t *testing.T) {
	_, err := ValidateTopics(`[
		{"title": "A?", "description": "One topic only.", "points": 10, "difficulty": "Easy", "icon": "⭐"}
	]`)
	var batch *ErrBatchSize
	if !errors.As(err, &batch) {
		t.Fatalf("expected ErrBatchSize, got %v", err)
	}
	if batch.Actual != 1 {
		t.Errorf("expected actual 1, got %d", batch.Actual)
	}
}

func TestValidateTopics_MissingField(t *testing.T) {
	payload := `[
		{"title": "A?", "description": "First.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"description": "No title here.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"title": "C?", "description": "Third.", "points": 10, "difficulty": "Easy", "icon": "⭐"}
	]`
	_, err := ValidateTopics(payload)
	var missing *ErrMissingField
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if missing.Index != 1 || missing.Field != "title" {
		t.Errorf("expected element 1 field title, got element %d field %q", missing.Index, missing.Field)
	}
}

func TestValidateTopics_EmptyStringIsMissing(t *testing.T) {
	payload := `[
		{"title": "", "description": "Empty title.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"title": "B?", "description": "Second.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"title": "C?", "description": "Third.", "points": 10, "difficulty": "Easy", "icon": "⭐"}
	]`
	_, err := ValidateTopics(payload)
	var missing *ErrMissingField
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if missing.Index != 0 || missing.Field != "title" {
		t.Errorf("expected element 0 field title, got element %d field %q", missing.Index, missing.Field)
	}
}

func TestValidateTopics_InvalidDifficulty(t *testing.T) {
	payload := `[
		{"title": "A?", "description": "First.", "points": 10, "difficulty": "easy", "icon": "⭐"},
		{"title": "B?", "description": "Second.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"title": "C?", "description": "Third.", "points": 10, "difficulty": "Easy", "icon": "⭐"}
	]`
	_, err := ValidateTopics(payload)
	var invalid *ErrInvalidEnum
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
	if invalid.Value != "easy" {
		t.Errorf("expected offending value %q, got %q", "easy", invalid.Value)
	}
}

func TestValidateTopics_PointsOutOfRange(t *testing.T) {
	payload := `[
		{"title": "A?", "description": "First.", "points": 50, "difficulty": "Easy", "icon": "⭐"},
		{"title": "B?", "description": "Second.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"title": "C?", "description": "Third.", "points": 10, "difficulty": "Easy", "icon": "⭐"}
	]`
	_, err := ValidateTopics(payload)
	var rangeErr *ErrOutOfRange
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if rangeErr.Value != 50 {
		t.Errorf("expected value 50, got %d", rangeErr.Value)
	}
}

func TestValidateTopics_FractionalPoints(t *testing.T) {
	payload := `[
		{"title": "A?", "description": "First.", "points": 10.5, "difficulty": "Easy", "icon": "⭐"},
		{"title": "B?", "description": "Second.", "points": 10, "difficulty": "Easy", "icon": "⭐"},
		{"title": "C?", "description": "Third.", "points": 10, "difficulty": "Easy", "icon": "⭐"}
	]`
	_, err := ValidateTopics(payload)
	var missing *ErrMissingField
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingField for fractional points, got %v", err)
	}
	if missing.Field != "points" {
		t.Errorf("expected field points, got %q", missing.Field)
	}
}

func TestValidateContent_Valid(t *testing.T) {
	details, err := ValidateContent(validContentJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
	if len(details.Facts) != 3 {
		t.Errorf("expected 3 facts, got %d", len(details.Facts))
	}
	if len(details.FollowUpQuestions) != 3 {
		t.Errorf("expected 3 follow-up questions, got %d", len(details.FollowUpQuestions))
	}
	if len(details.RelatedTopics) != 1 {
		t.Fatalf("expected 1 related topic, got %d", len(details.RelatedTopics))
	}
	if details.RelatedTopics[0].Difficulty != DifficultyEasy {
		t.Errorf("unexpected related topic difficulty %q", details.RelatedTopics[0].Difficulty)
	}
}

func TestValidateContent_NoRelatedTopics(t *testing.T) {
	payload := `{
		"explanation": "Volcanoes erupt when melted rock pushes up through the crust.",
		"facts": ["One.", "Two fun facts to share.", "Three facts in total here."],
		"followUpQuestions": ["Why is lava hot?", "Where are volcanoes found?", "Can volcanoes sleep?"]
	}`
	details, err := ValidateContent(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.RelatedTopics != nil {
		t.Errorf("expected nil related topics, got %v", details.RelatedTopics)
	}
}

func TestValidateContent_MissingExplanation(t *testing.T) {
	payload := `{
		"facts": ["A.", "B is a longer fact.", "C is another fact."],
		"followUpQuestions": ["Q1?", "Q2?", "Q3?"]
	}`
	_, err := ValidateContent(payload)
	var missing *ErrMissingField
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if missing.Index != -1 || missing.Field != "explanation" {
		t.Errorf("expected object-level explanation, got element %d field %q", missing.Index, missing.Field)
	}
}

func TestValidateContent_WrongFactCount(t *testing.T) {
	payload := `{
		"explanation": "Something interesting.",
		"facts": ["Only one fact here."],
		"followUpQuestions": ["Q1?", "Q2?", "Q3?"]
	}`
	_, err := ValidateContent(payload)
	var arity *ErrWrongArity
	if !errors.As(err, &arity) {
		t.Fatalf("expected ErrWrongArity, got %v", err)
	}
	if arity.Field != "facts" || arity.Expected != 3 || arity.Actual != 1 {
		t.Errorf("unexpected arity error: %+v", arity)
	}
}

func TestValidateContent_ArrayInsteadOfObject(t *testing.T) {
	_, err := ValidateContent(validTopicsJSON)
	var malformed *ErrMalformedJSON
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestValidateContent_InvalidRelatedDifficulty(t *testing.T) {
	payload := `{
		"explanation": "Something interesting.",
		"facts": ["Fact one here.", "Fact two here.", "Fact three here."],
		"followUpQuestions": ["Q1?", "Q2?", "Q3?"],
		"relatedTopics": [
			{"title": "More", "description": "Even more.", "difficulty": "Impossible"}
		]
	}`
	_, err := ValidateContent(payload)
	var invalid *ErrInvalidEnum
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
	if invalid.Value != "Impossible" {
		t.Errorf("expected offending value %q, got %q", "Impossible", invalid.Value)
	}
}
