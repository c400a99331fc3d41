package contentgen

import "strings"

// Sanitize strips the Markdown code-fence wrappers providers are observed
// to put around otherwise-valid JSON, even when told not to. Pure and
// total: text without fences passes through unchanged (modulo surrounding
// whitespace), and the function is idempotent. It runs unconditionally
// before every parse — never skipped as an optimization.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)

	if rest, ok := strings.CutPrefix(s, "```"); ok {
		// Drop the optional language tag ("json", "JSON", ...) on the
		// opening fence line. Only the fence line is touched: a payload
		// that itself starts with letters stays intact.
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 && isLanguageTag(rest[:nl]) {
			rest = rest[nl+1:]
		}
		s = strings.TrimSpace(rest)
		s = strings.TrimSuffix(s, "```")
	}

	return strings.TrimSpace(s)
}

// isLanguageTag reports whether the opening fence line is a bare language
// tag: letters only, possibly padded with spaces, possibly empty.
func isLanguageTag(line string) bool {
	for _, r := range strings.TrimSpace(line) {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}
