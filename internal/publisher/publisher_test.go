package publisher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
)

func publisherTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Runner.Output.Path = filepath.Join(t.TempDir(), "updates.json")
	cfg.Runner.Retry.InitialDelayMs = 1
	cfg.Runner.Retry.MaxDelayMs = 2

	return cfg
}

func newTestPublisher(cfg *config.Config, runner commandRunner) *Publisher {
	log := logger.NewLogger("error")
	git := NewGitPublisherWithRunner(cfg.Runner.Publish, cfg.Runner.Retry, runner, log)

	return NewWithGit(cfg, git, log)
}

func TestPublisher_FirstRunWritesAndCommits(t *testing.T) {
	cfg := publisherTestConfig(t)
	runner := newFakeRunner()

	p := newTestPublisher(cfg, runner)

	result, err := p.Publish(context.Background(), sampleEdition())
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.True(t, result.Committed)
	assert.Equal(t, 1, result.Articles)
	assert.NotEmpty(t, result.Fingerprint)

	_, err = os.Stat(cfg.Runner.Output.Path)
	require.NoError(t, err)

	// Exactly one commit, containing only the artifact.
	commits := 0

	for _, line := range runner.commandLines() {
		if containsArg(line, "commit") {
			commits++
			assert.Contains(t, line, "-- "+cfg.Runner.Output.Path)
		}
	}

	assert.Equal(t, 1, commits)
}

func TestPublisher_UnchangedEditionSkipsEverything(t *testing.T) {
	cfg := publisherTestConfig(t)
	runner := newFakeRunner()

	p := newTestPublisher(cfg, runner)

	first, err := p.Publish(context.Background(), sampleEdition())
	require.NoError(t, err)
	require.True(t, first.Written)

	callsAfterFirst := len(runner.calls)

	second, err := p.Publish(context.Background(), sampleEdition())
	require.NoError(t, err)

	assert.False(t, second.Written, "unchanged artifact must not be rewritten")
	assert.False(t, second.Committed, "unchanged artifact must not be committed")
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Len(t, runner.calls, callsAfterFirst, "no git commands on unchanged run")
}

func TestPublisher_PublishDisabledOnlyWrites(t *testing.T) {
	cfg := publisherTestConfig(t)
	cfg.Runner.Publish.Enabled = false
	runner := newFakeRunner()

	p := newTestPublisher(cfg, runner)

	result, err := p.Publish(context.Background(), sampleEdition())
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.False(t, result.Committed)
	assert.Empty(t, runner.calls)
}

func containsArg(line, arg string) bool {
	for _, field := range strings.Fields(line) {
		if field == arg {
			return true
		}
	}

	return false
}
