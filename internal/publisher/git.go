package publisher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
)

// Git errors.
var (
	ErrPushFailed = errors.New("push failed after retries")
)

// commandRunner executes git commands. Swapped out in tests.
type commandRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execRunner runs the real git binary.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()

	return string(output), err
}

// GitPublisher commits and pushes the artifact with a bot identity.
type GitPublisher struct {
	cfg    config.PublishConfig
	retry  config.RetryPolicy
	runner commandRunner
	logger *logger.Logger
}

// NewGitPublisher creates a publisher driving the git binary.
func NewGitPublisher(cfg config.PublishConfig, retry config.RetryPolicy, log *logger.Logger) *GitPublisher {
	return &GitPublisher{
		cfg:    cfg,
		retry:  retry,
		runner: execRunner{},
		logger: log,
	}
}

// NewGitPublisherWithRunner creates a publisher with a custom command runner (useful for testing).
func NewGitPublisherWithRunner(cfg config.PublishConfig, retry config.RetryPolicy, runner commandRunner, log *logger.Logger) *GitPublisher {
	return &GitPublisher{
		cfg:    cfg,
		retry:  retry,
		runner: runner,
		logger: log,
	}
}

// HasStagedChanges reports whether the artifact differs from HEAD.
func (g *GitPublisher) HasStagedChanges(ctx context.Context, file string) (bool, error) {
	output, err := g.runner.Run(ctx, g.cfg.RepoPath, "status", "--porcelain", "--", file)
	if err != nil {
		return false, fmt.Errorf("git status failed: %w (%s)", err, strings.TrimSpace(output))
	}

	return strings.TrimSpace(output) != "", nil
}

// Publish stages the file, commits it with the bot identity, and pushes.
// A push rejected by a concurrent remote commit is retried after a rebase,
// bounded by the retry policy.
func (g *GitPublisher) Publish(ctx context.Context, file, message string) error {
	if output, err := g.runner.Run(ctx, g.cfg.RepoPath, "add", "--", file); err != nil {
		return fmt.Errorf("git add failed: %w (%s)", err, strings.TrimSpace(output))
	}

	commitArgs := []string{
		"-c", "user.name=" + g.cfg.BotName,
		"-c", "user.email=" + g.cfg.BotEmail,
		"commit", "-m", message, "--", file,
	}
	if output, err := g.runner.Run(ctx, g.cfg.RepoPath, commitArgs...); err != nil {
		return fmt.Errorf("git commit failed: %w (%s)", err, strings.TrimSpace(output))
	}

	return g.push(ctx)
}

// push pushes the branch, rebasing onto the remote on conflict.
func (g *GitPublisher) push(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= g.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			g.logger.Warn("push rejected, rebasing onto remote", "attempt", attempt)

			if output, err := g.runWithToken(ctx, "pull", "--rebase", g.cfg.Remote, g.cfg.Branch); err != nil {
				return fmt.Errorf("git pull --rebase failed: %w (%s)", err, output)
			}
		}

		output, err := g.runWithToken(ctx, "push", g.cfg.Remote, g.cfg.Branch)
		if err == nil {
			return nil
		}

		lastErr = fmt.Errorf("git push failed: %w (%s)", err, output)
	}

	return fmt.Errorf("%w: %v", ErrPushFailed, lastErr)
}

// runWithToken runs a git command against the remote, rewriting the remote
// name to a credentialed URL when a token is configured. The token never
// reaches the logs.
func (g *GitPublisher) runWithToken(ctx context.Context, args ...string) (string, error) {
	token := g.cfg.ResolveToken()
	if token == "" {
		output, err := g.runner.Run(ctx, g.cfg.RepoPath, args...)

		return strings.TrimSpace(output), err
	}

	remoteURL, err := g.remoteURL(ctx)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("invalid remote url: %w", err)
	}

	u.User = url.UserPassword("oauth2", token)
	authenticatedURL := u.String()

	rewritten := make([]string, len(args))
	copy(rewritten, args)

	for i, arg := range rewritten {
		if arg == g.cfg.Remote {
			rewritten[i] = authenticatedURL
		}
	}

	output, err := g.runner.Run(ctx, g.cfg.RepoPath, rewritten...)

	safe := strings.ReplaceAll(output, token, "***")
	safe = strings.ReplaceAll(safe, authenticatedURL, remoteURL)

	return strings.TrimSpace(safe), err
}

// remoteURL resolves the configured remote to its URL.
func (g *GitPublisher) remoteURL(ctx context.Context) (string, error) {
	output, err := g.runner.Run(ctx, g.cfg.RepoPath, "remote", "get-url", g.cfg.Remote)
	if err != nil {
		return "", fmt.Errorf("failed to get remote url: %w", err)
	}

	return strings.TrimSpace(output), nil
}
