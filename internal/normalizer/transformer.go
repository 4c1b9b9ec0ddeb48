package normalizer

import (
	"newsrunner/internal/models"
	"newsrunner/pkg/utils"
)

// maxTitleLength bounds headline length before the portal cards clip them.
const maxTitleLength = 120

// Transformer cleans up generated editions before validation.
type Transformer struct {
	strings *utils.StringHelper
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		strings: utils.NewStringHelper(),
	}
}

// Transform normalizes whitespace, truncates over-long titles, and drops
// articles with no content at all. The input edition is not modified.
func (t *Transformer) Transform(edition models.Edition) models.Edition {
	out := models.NewEdition()

	for region, categories := range edition {
		for category, articles := range categories {
			cleaned := make([]models.Article, 0, len(articles))

			for _, article := range articles {
				article.Title = t.strings.TruncateString(t.strings.NormalizeWhitespace(article.Title), maxTitleLength)
				article.Content = t.strings.NormalizeWhitespace(article.Content)
				article.Link = t.strings.NormalizeWhitespace(article.Link)
				article.ImageURL = t.strings.NormalizeWhitespace(article.ImageURL)

				if article.IsEmpty() {
					continue
				}

				cleaned = append(cleaned, article)
			}

			out.Add(region, category, cleaned)
		}
	}

	return out
}
