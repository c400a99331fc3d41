package contentgen

import (
	"strings"
	"testing"

	"github.com/abhisek/wonderwhiz/internal/agegroup"
)

func TestBuildTopicsUserMessage(t *testing.T) {
	profile := agegroup.Resolve(9)
	msg := buildTopicsUserMessage(profile)

	for _, want := range []string{
		profile.Label,
		profile.Tone,
		`"title"`,
		`"description"`,
		`"points"`,
		`"difficulty"`,
		`"icon"`,
		`"Easy", "Medium", "Hard"`,
		"3 to 6",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("topics prompt missing %q", want)
		}
	}
	if strings.Contains(msg, "```") {
		t.Error("prompt must not itself contain code fences")
	}
}

func TestBuildContentUserMessage(t *testing.T) {
	profile := agegroup.Resolve(12)
	msg := buildContentUserMessage("Black holes", profile)

	for _, want := range []string{
		`"Black holes"`,
		profile.Label,
		`"explanation"`,
		`"facts"`,
		`"followUpQuestions"`,
		`"relatedTopics"`,
		"exactly 3",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("content prompt missing %q", want)
		}
	}
}
