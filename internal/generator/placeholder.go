package generator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"newsrunner/internal/models"
	"newsrunner/pkg/utils"
)

// PlaceholderProvider simulates content generation without any API calls.
// It produces the same shaped output the portal shipped with before the
// Gemini integration, which makes it useful for seeding, dry runs, and
// tests.
type PlaceholderProvider struct {
	mu      sync.Mutex
	rand    *rand.Rand
	strings *utils.StringHelper
}

// Ensure PlaceholderProvider implements Provider.
var _ Provider = (*PlaceholderProvider)(nil)

// NewPlaceholderProvider creates a placeholder provider. The seed fixes the
// generated colors and counts, so tests can be deterministic.
func NewPlaceholderProvider(seed int64) *PlaceholderProvider {
	return &PlaceholderProvider{
		rand:    rand.New(rand.NewSource(seed)),
		strings: utils.NewStringHelper(),
	}
}

// Generate fabricates count articles for the pair.
func (p *PlaceholderProvider) Generate(ctx context.Context, region models.Region, category string, count int) ([]models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	label := p.strings.TitleCase(category)
	articles := make([]models.Article, 0, count)

	for i := 1; i <= count; i++ {
		articles = append(articles, models.Article{
			Title: fmt.Sprintf("%s Update %d for %s", label, i, region.Name),
			Content: fmt.Sprintf(
				"This is a simulated summary of %s related to %s, article number %d. It highlights key developments and insights.",
				label, region.Name, i,
			),
			Link:     fmt.Sprintf("https://example.com/%s/%s/%d", region.Key, category, i),
			ImageURL: utils.PlaceholderImageURL(p.rand, fmt.Sprintf("%s %d", label, i)),
		})
	}

	return articles, nil
}

// Name returns the provider name.
func (p *PlaceholderProvider) Name() string {
	return "placeholder"
}

// Close is a no-op.
func (p *PlaceholderProvider) Close() error {
	return nil
}
