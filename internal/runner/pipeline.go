// Package runner wires generation, normalization, publication, and archival
// into one pipeline run.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsrunner/internal/archive"
	"newsrunner/internal/config"
	"newsrunner/internal/generator"
	"newsrunner/internal/logger"
	"newsrunner/internal/models"
	"newsrunner/internal/normalizer"
	"newsrunner/internal/publisher"
)

// BuildProvider constructs the configured content provider.
func BuildProvider(ctx context.Context, cfg *config.Config) (generator.Provider, error) {
	switch cfg.Runner.Provider.Name {
	case config.ProviderPlaceholder:
		return generator.NewPlaceholderProvider(time.Now().UnixNano()), nil
	case config.ProviderGemini:
		return generator.NewGeminiProvider(ctx, cfg.Runner.Provider)
	default:
		return nil, fmt.Errorf("%w: got %q", config.ErrInvalidProvider, cfg.Runner.Provider.Name)
	}
}

// Pipeline executes complete runs. The archive store may be nil.
type Pipeline struct {
	cfg       *config.Config
	generator *generator.Generator
	processor *normalizer.Processor
	publisher *publisher.Publisher
	store     *archive.Store
	provider  generator.Provider
	logger    *logger.Logger
}

// NewPipeline assembles a pipeline around a provider.
func NewPipeline(cfg *config.Config, provider generator.Provider, store *archive.Store, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		generator: generator.New(provider, cfg, log),
		processor: normalizer.NewProcessor(normalizer.RulesFromConfig(cfg)),
		publisher: publisher.New(cfg, log),
		store:     store,
		provider:  provider,
		logger:    log,
	}
}

// RunOnce executes one generate → normalize → publish pass. Each phase is a
// hard dependency on the previous one succeeding; no artifact is written or
// committed unless validation passed.
func (p *Pipeline) RunOnce(ctx context.Context) (*models.RunRecord, models.Edition, error) {
	run := &models.RunRecord{
		ID:        uuid.NewString(),
		Provider:  p.provider.Name(),
		StartedAt: time.Now().UTC(),
	}

	p.logger.Info("run started", "run", run.ID, "provider", run.Provider, "pairs", p.cfg.PairCount())

	edition, err := p.generator.GenerateEdition(ctx)
	if err != nil {
		return run, nil, fmt.Errorf("generation failed: %w", err)
	}

	edition, err = p.processor.Process(edition)
	if err != nil {
		return run, nil, fmt.Errorf("normalization failed: %w", err)
	}

	result, err := p.publisher.Publish(ctx, edition)
	if result != nil {
		run.Articles = result.Articles
		run.Fingerprint = result.Fingerprint
		run.Written = result.Written
		run.Committed = result.Committed
	}

	run.FinishedAt = time.Now().UTC()

	if err != nil {
		return run, edition, fmt.Errorf("publication failed: %w", err)
	}

	// Archive failures do not fail the run; the artifact is already out.
	if p.store != nil {
		if archiveErr := p.store.SaveRun(ctx, run, edition); archiveErr != nil {
			p.logger.Warn("archiving failed", "run", run.ID, "error", archiveErr)
		}
	}

	p.logger.Info("run finished",
		"run", run.ID,
		"articles", run.Articles,
		"written", run.Written,
		"committed", run.Committed,
		"duration", run.Duration().Round(time.Millisecond).String())

	return run, edition, nil
}

// Close releases the provider and archive store.
func (p *Pipeline) Close(ctx context.Context) {
	if err := p.provider.Close(); err != nil {
		p.logger.Warn("failed to close provider", "error", err)
	}

	if p.store != nil {
		if err := p.store.Close(ctx); err != nil {
			p.logger.Warn("failed to close archive store", "error", err)
		}
	}
}
