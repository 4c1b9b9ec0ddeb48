package generator

import (
	"errors"
	"strings"
	"testing"

	"newsrunner/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	region := models.Region{Key: "europe", Name: "Europe"}

	prompt := BuildPrompt(region, "technology", 12)

	for _, want := range []string{"12", "technology", "Europe", "imageUrl"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestParseArticles_PlainJSON(t *testing.T) {
	raw := `[{"title":"T","content":"C","link":"https://example.com","imageUrl":"https://img.example.com"}]`

	articles, err := ParseArticles(raw)
	if err != nil {
		t.Fatalf("ParseArticles failed: %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(articles))
	}

	if articles[0].Title != "T" {
		t.Errorf("Expected title T, got %q", articles[0].Title)
	}
}

func TestParseArticles_FencedJSON(t *testing.T) {
	raw := "```json\n[{\"title\":\"T\",\"content\":\"C\",\"link\":\"https://example.com\",\"imageUrl\":\"\"}]\n```"

	articles, err := ParseArticles(raw)
	if err != nil {
		t.Fatalf("ParseArticles failed on fenced JSON: %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(articles))
	}
}

func TestParseArticles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrEmptyResponse},
		{name: "whitespace", raw: "   \n  ", wantErr: ErrEmptyResponse},
		{name: "empty array", raw: "[]", wantErr: ErrEmptyResponse},
		{name: "not JSON", raw: "I could not generate articles.", wantErr: ErrMalformedResponse},
		{name: "object not array", raw: `{"title":"T"}`, wantErr: ErrMalformedResponse},
		{
			name:    "article missing required fields",
			raw:     `[{"title":"T","content":"","link":"https://example.com","imageUrl":""}]`,
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArticles(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
