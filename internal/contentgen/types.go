// Package contentgen turns a loosely-specified request ("3 topics for an
// 8-year-old", "explain volcanoes for a 12-year-old") into a validated,
// strongly-typed payload obtained from a free-text LLM provider.
//
// The pipeline is resolve age profile → synthesize prompt → invoke provider
// → sanitize → validate. Each stage short-circuits on failure and every
// failure reaches the caller as a typed error; nothing is silently patched
// or defaulted, because the consumer is a child-facing UI that must never
// render fabricated-looking content.
package contentgen

// Kind is the request discriminant. It selects the prompt template and the
// response schema.
type Kind string

const (
	// KindTopics requests a batch of learning-topic suggestions.
	KindTopics Kind = "topics"

	// KindContent requests a deep-dive explanation of one topic.
	KindContent Kind = "content"
)

// Request describes one generation request. Age is the caller-supplied
// child age; non-positive values resolve to the default age downstream.
// Topic is required for KindContent and ignored for KindTopics.
type Request struct {
	Kind  Kind
	Age   int
	Topic string
}

// Difficulty is the closed difficulty rating for a topic.
// Case-sensitive: the validator accepts exactly these three literals.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Topic is one validated learning-topic suggestion.
type Topic struct {
	// Title is a short question or topic name, e.g.
	// "Why do rainbows appear after rain?"
	Title string `json:"title"`

	// Description is one inviting sentence about the topic.
	Description string `json:"description"`

	// Points is the reward for completing the topic, between 5 and 20.
	Points int `json:"points"`

	// Difficulty is exactly one of Easy, Medium, Hard.
	Difficulty Difficulty `json:"difficulty"`

	// Icon is a single emoji for the topic card.
	Icon string `json:"icon"`
}

// RelatedTopic is a partial topic record attached to a deep-dive.
type RelatedTopic struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
}

// ContentDetails is a validated deep-dive for one topic.
// Facts and FollowUpQuestions carry exactly three entries each; the
// presentation layer indexes them positionally.
type ContentDetails struct {
	Explanation       string         `json:"explanation"`
	Facts             []string       `json:"facts"`
	FollowUpQuestions []string       `json:"followUpQuestions"`
	RelatedTopics     []RelatedTopic `json:"relatedTopics,omitempty"`
}
