package cmd

import (
	"strings"
	"testing"

	"github.com/abhisek/wonderwhiz/internal/contentgen"
)

func TestRenderContent(t *testing.T) {
	details := &contentgen.ContentDetails{
		Explanation:       "Rainbows appear when sunlight splits inside raindrops.",
		Facts:             []string{"Fact one.", "Fact two.", "Fact three."},
		FollowUpQuestions: []string{"Q1?", "Q2?", "Q3?"},
		RelatedTopics: []contentgen.RelatedTopic{
			{Title: "Why is the sky blue?", Description: "Sunlight paints our sky.", Difficulty: contentgen.DifficultyEasy},
		},
	}

	out := renderContent(details)

	for _, want := range []string{
		"Rainbows appear when sunlight splits inside raindrops.",
		"Fun facts:",
		"• Fact one.",
		"Keep wondering:",
		"? Q2?",
		"Related topics:",
		"Why is the sky blue? — Sunlight paints our sky. (Easy)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderContent_NoRelatedTopics(t *testing.T) {
	details := &contentgen.ContentDetails{
		Explanation:       "Volcanoes erupt when magma rises.",
		Facts:             []string{"A.", "B.", "C."},
		FollowUpQuestions: []string{"Q1?", "Q2?", "Q3?"},
	}

	out := renderContent(details)
	if strings.Contains(out, "Related topics:") {
		t.Error("expected no related-topics section")
	}
}
