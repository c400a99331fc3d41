package contentgen

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain json untouched",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "fence with json tag",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "fence with uppercase tag",
			in:   "```JSON\n[1, 2]\n```",
			want: `[1, 2]`,
		},
		{
			name: "fence without tag",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n{}\n```  \n",
			want: `{}`,
		},
		{
			name: "no closing fence",
			in:   "```json\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "fenced literal on one line keeps its letters",
			in:   "```true```",
			want: "true",
		},
		{
			name: "payload starting with letters survives",
			in:   "```\ntrue\n```",
			want: "true",
		},
		{
			name: "tag stripped but lettered payload kept",
			in:   "```json\ntrue\n```",
			want: "true",
		},
		{
			name: "backticks inside strings survive",
			in:   "{\"code\": \"use ``` for fences\"}",
			want: "{\"code\": \"use ``` for fences\"}",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		`{"a": 1}`,
		"```\n[1]\n```",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
