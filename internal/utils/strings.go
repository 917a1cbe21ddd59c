package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeFilename keeps uploaded filenames safe for the public static dir:
// path separators become hyphens, whitespace collapses, everything else stays.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "-", "\\", "-", "..", "-")
	name = replacer.Replace(name)
	return strings.Join(strings.Fields(name), "-")
}
