package vsort

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isLetter reports whether c is a lowercase ASCII letter.
// Parsing lowercases its input first, so this is the only letter class
// the scanners below need to know about.
func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// indexLetter returns the index of the first letter in s, or -1.
func indexLetter(s string) int {
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			return i
		}
	}

	return -1
}

// lastLetter returns the index of the last letter in s, or -1.
func lastLetter(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if isLetter(s[i]) {
			return i
		}
	}

	return -1
}

// capStrings returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capStrings(out []string, limit int) []string {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}
