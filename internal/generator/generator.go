package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
	"newsrunner/internal/models"
)

// Generator walks every enabled region/category pair and fills an edition,
// retrying individual pairs under the configured retry policy.
type Generator struct {
	provider Provider
	cfg      *config.Config
	logger   *logger.Logger
	rand     *rand.Rand
	sleep    func(time.Duration)
}

// New creates a generator.
func New(provider Provider, cfg *config.Config, log *logger.Logger) *Generator {
	return &Generator{
		provider: provider,
		cfg:      cfg,
		logger:   log,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:    time.Sleep,
	}
}

// newWithSleep is used by tests to avoid real backoff delays.
func newWithSleep(provider Provider, cfg *config.Config, log *logger.Logger, sleep func(time.Duration)) *Generator {
	g := New(provider, cfg, log)
	g.sleep = sleep

	return g
}

// GenerateEdition produces a complete edition. Any pair that still fails
// after the retry budget aborts the whole run; a partial edition is never
// returned.
func (g *Generator) GenerateEdition(ctx context.Context) (models.Edition, error) {
	regions := g.cfg.GetEnabledRegions()
	categories := g.cfg.Runner.Categories
	retry := &g.cfg.Runner.Retry
	pairDelay := g.cfg.Runner.Provider.PairDelay()

	edition := models.NewEdition()
	pair := 0
	total := len(regions) * len(categories)

	for _, region := range regions {
		for _, category := range categories {
			pair++

			if err := ctx.Err(); err != nil {
				return nil, err
			}

			count := g.countForPair()
			g.logger.Debug("generating pair",
				"region", region.Key, "category", category, "count", count, "pair", fmt.Sprintf("%d/%d", pair, total))

			articles, err := g.generatePair(ctx, region, category, count, retry)
			if err != nil {
				return nil, fmt.Errorf("pair %s/%s failed after %d attempts: %w",
					region.Key, category, retry.MaxAttempts, err)
			}

			edition.Add(region.Key, category, articles)

			if pairDelay > 0 && pair < total {
				g.sleep(pairDelay)
			}
		}
	}

	g.logger.Info("edition generated",
		"provider", g.provider.Name(), "pairs", total, "articles", edition.Total())

	return edition, nil
}

// generatePair runs the retry loop for one region/category pair.
func (g *Generator) generatePair(ctx context.Context, region models.Region, category string, count int, retry *config.RetryPolicy) ([]models.Article, error) {
	var lastErr error

	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		if delay := retry.GetRetryDelay(attempt); delay > 0 {
			g.sleep(delay)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		articles, err := g.provider.Generate(ctx, region, category, count)
		if err == nil {
			return articles, nil
		}

		lastErr = err
		g.logger.Warn("pair attempt failed",
			"region", region.Key, "category", category, "attempt", attempt, "error", err)
	}

	return nil, lastErr
}

// countForPair draws an article count from the configured bounds.
func (g *Generator) countForPair() int {
	bounds := g.cfg.Runner.Articles
	if bounds.Max <= bounds.Min {
		return bounds.Min
	}

	return bounds.Min + g.rand.Intn(bounds.Max-bounds.Min+1)
}
