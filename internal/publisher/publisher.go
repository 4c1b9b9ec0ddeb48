package publisher

import (
	"context"
	"fmt"
	"time"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
	"newsrunner/internal/models"
	"newsrunner/pkg/fingerprint"
)

// Result describes what one publish pass did.
type Result struct {
	Path        string
	Fingerprint string
	Articles    int
	Written     bool
	Committed   bool
}

// Publisher writes editions to the artifact file and commits them when the
// content actually changed. An unchanged edition is success without a write
// or a commit.
type Publisher struct {
	writer *Writer
	git    *GitPublisher
	cfg    *config.Config
	logger *logger.Logger
	now    func() time.Time
}

// New creates a publisher.
func New(cfg *config.Config, log *logger.Logger) *Publisher {
	return &Publisher{
		writer: NewWriter(cfg.Runner.Output),
		git:    NewGitPublisher(cfg.Runner.Publish, cfg.Runner.Retry, log),
		cfg:    cfg,
		logger: log,
		now:    time.Now,
	}
}

// NewWithGit creates a publisher with a custom git publisher (useful for testing).
func NewWithGit(cfg *config.Config, git *GitPublisher, log *logger.Logger) *Publisher {
	p := New(cfg, log)
	p.git = git

	return p
}

// Publish serializes the edition, skips everything when the artifact is
// unchanged, and otherwise writes and (when enabled) commits and pushes it.
func (p *Publisher) Publish(ctx context.Context, edition models.Edition) (*Result, error) {
	data, err := p.writer.Marshal(edition)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:        p.cfg.Runner.Output.Path,
		Fingerprint: fingerprint.Compute(data),
		Articles:    edition.Total(),
	}

	changed, err := fingerprint.FileChanged(result.Path, data)
	if err != nil {
		return nil, err
	}

	if !changed {
		p.logger.Info("artifact unchanged, nothing to publish", "path", result.Path)

		return result, nil
	}

	if err := p.writer.Write(data); err != nil {
		return nil, err
	}

	result.Written = true
	p.logger.Info("artifact written", "path", result.Path, "bytes", len(data), "articles", result.Articles)

	if !p.cfg.Runner.Publish.Enabled {
		return result, nil
	}

	message := fmt.Sprintf("Update portal content: %s", p.now().UTC().Format("2006-01-02 15:04:05"))
	if err := p.git.Publish(ctx, result.Path, message); err != nil {
		return result, err
	}

	result.Committed = true
	p.logger.Info("artifact published", "branch", p.cfg.Runner.Publish.Branch)

	return result, nil
}
