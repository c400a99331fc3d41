// Package agegroup maps a child's age to prompt-tuning guidance.
//
// Profiles are derived fresh per request and never persisted. The caller
// supplies whatever age it has (user profile, welcome screen input); any
// non-positive value falls back to DefaultAge rather than failing.
package agegroup

// DefaultAge is used when the caller-supplied age is absent or invalid.
const DefaultAge = 8

// Profile carries the tone, complexity, and iconography guidance for one
// age bracket. All fields feed directly into prompt synthesis.
type Profile struct {
	// Label names the bracket, e.g. "8-10".
	Label string

	// Tone is the descriptive register for generated prose.
	Tone string

	// Complexity is prose-complexity guidance for the model.
	Complexity string

	// VisualVocabulary suggests emoji/iconography appropriate for the bracket.
	VisualVocabulary []string
}

// brackets is ordered youngest to oldest. Cutoff is the highest age that
// still belongs to the bracket; the last entry catches everything older.
var brackets = []struct {
	cutoff  int
	profile Profile
}{
	{
		cutoff: 7,
		profile: Profile{
			Label:            "5-7",
			Tone:             "playful and encouraging, like a fun storyteller",
			Complexity:       "very simple words and short sentences, one idea at a time",
			VisualVocabulary: []string{"🌈", "⭐", "🦋", "🐥", "🎈"},
		},
	},
	{
		cutoff: 10,
		profile: Profile{
			Label:            "8-10",
			Tone:             "curious and enthusiastic, celebrating discovery",
			Complexity:       "clear everyday language with the occasional new word explained",
			VisualVocabulary: []string{"🚀", "🔬", "🌋", "🦖", "🌊"},
		},
	},
	{
		cutoff: 13,
		profile: Profile{
			Label:            "11-13",
			Tone:             "engaging and respectful, treating the reader as capable",
			Complexity:       "richer vocabulary and multi-step ideas, still concrete",
			VisualVocabulary: []string{"🧬", "🪐", "⚡", "🧠", "🗺️"},
		},
	},
	{
		cutoff: 16,
		profile: Profile{
			Label:            "14-16",
			Tone:             "informative and thought-provoking, near-adult register",
			Complexity:       "nuanced explanations with abstract concepts and real-world links",
			VisualVocabulary: []string{"🔭", "📐", "🌍", "💡", "📊"},
		},
	},
}

// Resolve returns the Profile for the given age. Total over all integers:
// non-positive ages resolve as DefaultAge, ages past the oldest cutoff clamp
// to the oldest bracket.
func Resolve(age int) Profile {
	if age <= 0 {
		age = DefaultAge
	}
	for _, b := range brackets {
		if age <= b.cutoff {
			return b.profile
		}
	}
	return brackets[len(brackets)-1].profile
}
