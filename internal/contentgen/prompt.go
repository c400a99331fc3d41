package contentgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/wonderwhiz/internal/agegroup"
)

// The provider is a free-text generator with no structured-output
// guarantee, so the prompt is the first and cheapest validation layer:
// every field name, type, and enumeration is spelled out verbatim and an
// example payload anchors the output format. The sanitizer and validator
// downstream are a safety net, not a fixer for elaborate prose.

const systemPrompt = `You are WonderWhiz, a friendly educational guide for children. You create engaging, accurate, age-appropriate learning content that sparks curiosity. When asked for JSON you respond with only the raw JSON value - no prose, no markdown code fences, no commentary before or after.`

// topicsExample is the example payload embedded in the topics prompt.
const topicsExample = `[
  {"title": "Why do rainbows appear after rain?", "description": "Discover the colorful magic of light and water!", "points": 10, "difficulty": "Easy", "icon": "🌈"},
  {"title": "How do volcanoes erupt?", "description": "Journey deep inside the Earth to find out!", "points": 15, "difficulty": "Medium", "icon": "🌋"},
  {"title": "What makes the ocean salty?", "description": "Dive into the salty science of the sea!", "points": 10, "difficulty": "Easy", "icon": "🌊"},
  {"title": "How do planes stay in the air?", "description": "Uncover the invisible forces of flight!", "points": 20, "difficulty": "Hard", "icon": "✈️"}
]`

// contentExample is the example payload embedded in the content prompt.
const contentExample = `{
  "explanation": "Rainbows appear when sunlight shines through raindrops...",
  "facts": ["Every rainbow is actually a full circle.", "No two people see exactly the same rainbow.", "Double rainbows flip their colors."],
  "followUpQuestions": ["Can you see a rainbow at night?", "Why is the sky blue?", "What is light made of?"],
  "relatedTopics": [
    {"title": "Why is the sky blue?", "description": "Learn how sunlight paints our sky.", "difficulty": "Easy"}
  ]
}`

// buildTopicsUserMessage renders the topics request for one age profile.
func buildTopicsUserMessage(profile agegroup.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Suggest 4 learning topics for a child aged %s.\n\n", profile.Label)
	fmt.Fprintf(&b, "Tone: %s\n", profile.Tone)
	fmt.Fprintf(&b, "Complexity: %s\n", profile.Complexity)
	fmt.Fprintf(&b, "Suggested icons: %s\n", strings.Join(profile.VisualVocabulary, " "))

	b.WriteString(`
Respond with a JSON array of 3 to 6 topic objects. Every object must have exactly these fields:
- "title": string, a short question or topic name (never empty)
- "description": string, one inviting sentence about the topic (never empty)
- "points": integer between 5 and 20
- "difficulty": exactly one of "Easy", "Medium", "Hard" (case-sensitive)
- "icon": string, a single emoji

Example response:
`)
	b.WriteString(topicsExample)
	b.WriteString("\n\nRespond with only the raw JSON array. No prose, no code fences.")

	return b.String()
}

// buildContentUserMessage renders the deep-dive request for one topic and
// age profile.
func buildContentUserMessage(topic string, profile agegroup.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create engaging content about %q for a child aged %s.\n\n", topic, profile.Label)
	fmt.Fprintf(&b, "Tone: %s\n", profile.Tone)
	fmt.Fprintf(&b, "Complexity: %s\n", profile.Complexity)

	b.WriteString(`
Respond with a single JSON object with exactly these fields:
- "explanation": string, a brief engaging explanation of the topic (never empty)
- "facts": array of exactly 3 fun, memorable facts (non-empty strings)
- "followUpQuestions": array of exactly 3 questions that spark curiosity (non-empty strings)
- "relatedTopics": array of up to 3 objects for further exploration, each with "title" (string), "description" (string), and "difficulty" (exactly one of "Easy", "Medium", "Hard")

Example response:
`)
	b.WriteString(contentExample)
	b.WriteString("\n\nRespond with only the raw JSON object. No prose, no code fences.")

	return b.String()
}
