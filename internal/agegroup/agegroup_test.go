package agegroup

import "testing"

func TestResolve_Brackets(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{5, "5-7"},
		{7, "5-7"},
		{8, "8-10"},
		{10, "8-10"},
		{11, "11-13"},
		{13, "11-13"},
		{14, "14-16"},
		{16, "14-16"},
	}
	for _, tc := range cases {
		got := Resolve(tc.age)
		if got.Label != tc.want {
			t.Errorf("Resolve(%d).Label = %q, want %q", tc.age, got.Label, tc.want)
		}
	}
}

func TestResolve_NonPositiveFallsBackToDefault(t *testing.T) {
	want := Resolve(DefaultAge).Label
	for _, age := range []int{0, -1, -100} {
		got := Resolve(age)
		if got.Label != want {
			t.Errorf("Resolve(%d).Label = %q, want default bracket %q", age, got.Label, want)
		}
	}
}

func TestResolve_ClampsAboveOldestBracket(t *testing.T) {
	want := Resolve(16).Label
	for _, age := range []int{17, 25, 99} {
		got := Resolve(age)
		if got.Label != want {
			t.Errorf("Resolve(%d).Label = %q, want %q", age, got.Label, want)
		}
	}
}

func TestResolve_ProfilesAreComplete(t *testing.T) {
	for _, age := range []int{6, 9, 12, 15} {
		p := Resolve(age)
		if p.Tone == "" {
			t.Errorf("Resolve(%d): empty tone", age)
		}
		if p.Complexity == "" {
			t.Errorf("Resolve(%d): empty complexity", age)
		}
		if len(p.VisualVocabulary) == 0 {
			t.Errorf("Resolve(%d): empty visual vocabulary", age)
		}
	}
}
