package utils

import (
	"strings"
	"unicode"
)

// MakeSlug derives a URL-safe identifier from a display title: lowercase,
// strip everything but ASCII letters, digits, whitespace and hyphens, then
// collapse whitespace runs into single hyphens. Output always matches
// ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty. Deterministic; callers that need
// uniqueness must guard for that themselves.
func MakeSlug(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
