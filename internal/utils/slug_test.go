package utils

import (
	"strings"
	"testing"
)

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Adventure Tours", "adventure-tours"},
		{"  Desert Safari  ", "desert-safari"},
		{"Dubai & Abu Dhabi: 5-Day Trip!", "dubai-abu-dhabi-5-day-trip"},
		{"Rock-n-Roll Nights", "rock-n-roll-nights"},
		{"--- Weird --- Title ---", "weird-title"},
		{"", ""},
		{"!!!", ""},
		{"Multi   Space\tTitle", "multi-space-title"},
		// non-ASCII letters are stripped, not kept
		{"Ünïcödé Tïtle", "ncd-ttle"},
		{"Café São Paulo", "caf-so-paulo"},
		{"日本 Tour 2026", "tour-2026"},
	}

	for _, tc := range cases {
		got := MakeSlug(tc.in)
		if got != tc.want {
			t.Fatalf("MakeSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeSlugShape(t *testing.T) {
	inputs := []string{
		"Adventure Tours", "A  B  C", "Ünïcödé Tïtle", "trip #42 (updated)",
		" leading and trailing ", "UPPER-case",
	}
	for _, in := range inputs {
		slug := MakeSlug(in)
		if slug == "" {
			continue
		}
		for _, r := range slug {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
				t.Fatalf("MakeSlug(%q) = %q: %q outside [a-z0-9-]", in, slug, r)
			}
		}
		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			t.Fatalf("MakeSlug(%q) = %q: leading/trailing hyphen", in, slug)
		}
		if strings.Contains(slug, "--") {
			t.Fatalf("MakeSlug(%q) = %q: hyphen run", in, slug)
		}
		if slug != MakeSlug(in) {
			t.Fatalf("MakeSlug(%q) not deterministic", in)
		}
	}
}
