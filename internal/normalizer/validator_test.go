package normalizer

import (
	"errors"
	"testing"

	"newsrunner/internal/models"
)

func testRules() Rules {
	return Rules{
		Regions:     []string{"europe"},
		Categories:  []string{"news"},
		MinArticles: 1,
		MaxArticles: 3,
	}
}

func validArticle() models.Article {
	return models.Article{
		Title:    "Title",
		Content:  "Content",
		Link:     "https://example.com/a",
		ImageURL: "https://placehold.co/600x400",
	}
}

func TestNewValidator(t *testing.T) {
	v := NewValidator(testRules())
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(testRules())

	edition := models.NewEdition()
	edition.Add("europe", "news", []models.Article{validArticle()})

	if err := v.Validate(edition); err != nil {
		t.Errorf("Validate returned unexpected error for valid edition: %v", err)
	}
}

func TestValidator_Validate_Errors(t *testing.T) {
	makeEdition := func(mutate func(*models.Article)) models.Edition {
		article := validArticle()
		mutate(&article)

		edition := models.NewEdition()
		edition.Add("europe", "news", []models.Article{article})

		return edition
	}

	tests := []struct {
		name    string
		data    interface{}
		wantErr error
	}{
		{
			name:    "nil input",
			data:    nil,
			wantErr: ErrInvalidDataType,
		},
		{
			name:    "wrong type",
			data:    "not an edition",
			wantErr: ErrInvalidDataType,
		},
		{
			name:    "empty edition",
			data:    models.NewEdition(),
			wantErr: ErrEmptyEdition,
		},
		{
			name: "missing region",
			data: func() models.Edition {
				e := models.NewEdition()
				e.Add("asia", "news", []models.Article{validArticle()})

				return e
			}(),
			wantErr: ErrMissingRegion,
		},
		{
			name: "missing category",
			data: func() models.Edition {
				e := models.NewEdition()
				e.Add("europe", "travel", []models.Article{validArticle()})

				return e
			}(),
			wantErr: ErrMissingCategory,
		},
		{
			name: "too many articles",
			data: func() models.Edition {
				e := models.NewEdition()
				e.Add("europe", "news", []models.Article{
					validArticle(), validArticle(), validArticle(), validArticle(),
				})

				return e
			}(),
			wantErr: ErrTooManyArticles,
		},
		{
			name:    "missing title",
			data:    makeEdition(func(a *models.Article) { a.Title = "" }),
			wantErr: ErrArticleMissingTitle,
		},
		{
			name:    "missing content",
			data:    makeEdition(func(a *models.Article) { a.Content = "" }),
			wantErr: ErrArticleMissingContent,
		},
		{
			name:    "missing link",
			data:    makeEdition(func(a *models.Article) { a.Link = "" }),
			wantErr: ErrArticleMissingLink,
		},
		{
			name:    "relative link",
			data:    makeEdition(func(a *models.Article) { a.Link = "/articles/1" }),
			wantErr: ErrInvalidArticleURL,
		},
		{
			name:    "bad image URL",
			data:    makeEdition(func(a *models.Article) { a.ImageURL = "ftp://example.com/x" }),
			wantErr: ErrInvalidArticleURL,
		},
	}

	v := NewValidator(testRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidator_TooFewArticles(t *testing.T) {
	rules := testRules()
	rules.MinArticles = 2

	v := NewValidator(rules)

	edition := models.NewEdition()
	edition.Add("europe", "news", []models.Article{validArticle()})

	if err := v.Validate(edition); !errors.Is(err, ErrTooFewArticles) {
		t.Errorf("Expected ErrTooFewArticles, got %v", err)
	}
}

func TestIsAbsoluteHTTPURL(t *testing.T) {
	valid := []string{"https://example.com", "http://example.com/a/b?c=1"}
	for _, u := range valid {
		if !IsAbsoluteHTTPURL(u) {
			t.Errorf("Expected %q to be valid", u)
		}
	}

	invalid := []string{"", "/relative", "ftp://example.com", "https://", "example.com"}
	for _, u := range invalid {
		if IsAbsoluteHTTPURL(u) {
			t.Errorf("Expected %q to be invalid", u)
		}
	}
}
