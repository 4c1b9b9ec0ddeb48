package utils

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeWhitespace(t *testing.T) {
	helper := NewStringHelper()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses runs", "a  b\t\tc", "a b c"},
		{"trims ends", "  padded  ", "padded"},
		{"newlines", "line one\nline two", "line one line two"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := helper.NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	helper := NewStringHelper()

	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"short string unchanged", "short", 10, "short"},
		{"exact length unchanged", "exact", 5, "exact"},
		{"long string truncated", "this is too long", 7, "this is..."},
		{"multibyte runes kept whole", "éééééééééé", 4, "éééé..."},
		{"multibyte within limit unchanged", "日本語", 3, "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := helper.TruncateString(tt.input, tt.maxLength)
			if got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.want)
			}

			if !utf8.ValidString(got) {
				t.Errorf("TruncateString(%q, %d) produced invalid UTF-8", tt.input, tt.maxLength)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	helper := NewStringHelper()

	tests := []struct {
		input string
		want  string
	}{
		{"news", "News"},
		{"north_america", "North America"},
		{"travel_tips", "Travel Tips"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := helper.TitleCase(tt.input); got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRandomHexColor(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		color := RandomHexColor(r)

		if len(color) != 6 {
			t.Fatalf("Expected 6 hex digits, got %q", color)
		}

		for _, c := range color {
			if !strings.ContainsRune(hexDigits, c) {
				t.Fatalf("Unexpected character %q in color %q", c, color)
			}
		}
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	url := PlaceholderImageURL(r, "Europe News")

	if !strings.HasPrefix(url, "https://placehold.co/600x400/") {
		t.Errorf("Unexpected URL prefix: %s", url)
	}

	if !strings.HasSuffix(url, "?text=Europe+News") {
		t.Errorf("Label not query-escaped: %s", url)
	}
}
