package normalizer

import (
	"errors"
	"fmt"
	"net/url"

	"newsrunner/internal/config"
	"newsrunner/internal/models"
)

// Validation errors.
var (
	ErrInvalidDataType       = errors.New("invalid data type: expected models.Edition")
	ErrEmptyEdition          = errors.New("edition contains no regions")
	ErrMissingRegion         = errors.New("edition is missing a configured region")
	ErrMissingCategory       = errors.New("region is missing a configured category")
	ErrTooFewArticles        = errors.New("too few articles for pair")
	ErrTooManyArticles       = errors.New("too many articles for pair")
	ErrArticleMissingTitle   = errors.New("article missing title")
	ErrArticleMissingContent = errors.New("article missing content")
	ErrArticleMissingLink    = errors.New("article missing link")
	ErrInvalidArticleURL     = errors.New("article URL is not an absolute http(s) URL")
)

// Rules configures edition validation.
type Rules struct {
	Regions     []string
	Categories  []string
	MinArticles int
	MaxArticles int
}

// RulesFromConfig derives validation rules from the runner configuration.
func RulesFromConfig(cfg *config.Config) Rules {
	regions := make([]string, 0, len(cfg.Runner.Regions))
	for _, r := range cfg.GetEnabledRegions() {
		regions = append(regions, r.Key)
	}

	return Rules{
		Regions:     regions,
		Categories:  cfg.Runner.Categories,
		MinArticles: cfg.Runner.Articles.Min,
		MaxArticles: cfg.Runner.Articles.Max,
	}
}

// Validator handles edition validation.
type Validator struct {
	rules Rules
}

// NewValidator creates a validator with the given rules.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// Validate checks that data is a complete, well-formed edition.
func (v *Validator) Validate(data interface{}) error {
	edition, ok := data.(models.Edition)
	if !ok {
		return ErrInvalidDataType
	}

	if len(edition) == 0 {
		return ErrEmptyEdition
	}

	for _, region := range v.rules.Regions {
		categories, found := edition[region]
		if !found {
			return fmt.Errorf("%w: %s", ErrMissingRegion, region)
		}

		for _, category := range v.rules.Categories {
			articles, found := categories[category]
			if !found {
				return fmt.Errorf("%w: %s/%s", ErrMissingCategory, region, category)
			}

			if err := v.validatePair(region, category, articles); err != nil {
				return err
			}
		}
	}

	return nil
}

// validatePair validates counts and per-article fields for one pair.
func (v *Validator) validatePair(region, category string, articles []models.Article) error {
	if v.rules.MinArticles > 0 && len(articles) < v.rules.MinArticles {
		return fmt.Errorf("%w %s/%s: got %d, want at least %d",
			ErrTooFewArticles, region, category, len(articles), v.rules.MinArticles)
	}

	if v.rules.MaxArticles > 0 && len(articles) > v.rules.MaxArticles {
		return fmt.Errorf("%w %s/%s: got %d, want at most %d",
			ErrTooManyArticles, region, category, len(articles), v.rules.MaxArticles)
	}

	for i, article := range articles {
		if article.Title == "" {
			return fmt.Errorf("%w: %s/%s[%d]", ErrArticleMissingTitle, region, category, i)
		}

		if article.Content == "" {
			return fmt.Errorf("%w: %s/%s[%d]", ErrArticleMissingContent, region, category, i)
		}

		if article.Link == "" {
			return fmt.Errorf("%w: %s/%s[%d]", ErrArticleMissingLink, region, category, i)
		}

		if !IsAbsoluteHTTPURL(article.Link) {
			return fmt.Errorf("%w: %s/%s[%d] link %q", ErrInvalidArticleURL, region, category, i, article.Link)
		}

		if article.ImageURL != "" && !IsAbsoluteHTTPURL(article.ImageURL) {
			return fmt.Errorf("%w: %s/%s[%d] imageUrl %q", ErrInvalidArticleURL, region, category, i, article.ImageURL)
		}
	}

	return nil
}

// IsAbsoluteHTTPURL reports whether raw parses as an absolute http(s) URL.
func IsAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
