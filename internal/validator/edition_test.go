package validator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "updates.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	return path
}

const validFileJSON = `{
  "europe": {
    "news": [
      {"title": "T1", "content": "C1", "link": "https://example.com/1", "imageUrl": "https://placehold.co/600x400"},
      {"title": "T2", "content": "C2", "link": "https://example.com/2", "imageUrl": ""}
    ],
    "travel": [
      {"title": "T3", "content": "C3", "link": "https://example.com/3", "imageUrl": ""}
    ]
  }
}`

func TestValidateFile_Valid(t *testing.T) {
	path := writeTempFile(t, validFileJSON)

	edition, report, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}

	if !report.Valid() {
		t.Errorf("Expected valid report, got problems: %v", report.Problems)
	}

	if report.Regions != 1 || report.Pairs != 2 || report.Articles != 3 {
		t.Errorf("Unexpected report counts: %+v", report)
	}

	if edition.Total() != 3 {
		t.Errorf("Expected 3 articles in edition, got %d", edition.Total())
	}
}

func TestValidateFile_Problems(t *testing.T) {
	path := writeTempFile(t, `{
  "asia": {
    "news": [
      {"title": "", "content": "C", "link": "not-a-url", "imageUrl": "also-bad"}
    ]
  }
}`)

	_, report, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}

	if report.Valid() {
		t.Fatal("Expected problems, got valid report")
	}

	// Missing title, bad link, bad image URL.
	if len(report.Problems) != 3 {
		t.Errorf("Expected 3 problems, got %d: %v", len(report.Problems), report.Problems)
	}
}

func TestValidateFile_NotJSON(t *testing.T) {
	path := writeTempFile(t, "definitely not json")

	_, _, err := ValidateFile(path)
	if !errors.Is(err, ErrNotJSON) {
		t.Errorf("Expected ErrNotJSON, got %v", err)
	}
}

func TestValidateFile_Empty(t *testing.T) {
	path := writeTempFile(t, "{}")

	_, _, err := ValidateFile(path)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Expected ErrEmptyFile, got %v", err)
	}
}

func TestValidateFile_Missing(t *testing.T) {
	_, _, err := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}
