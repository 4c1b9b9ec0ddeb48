// Package config provides configuration management for the content runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"newsrunner/internal/models"
)

// Configuration validation errors.
var (
	ErrNoRegions                = errors.New("at least one region is required")
	ErrRegionMissingKey         = errors.New("region key is required")
	ErrNoEnabledRegions         = errors.New("at least one region must be enabled")
	ErrNoCategories             = errors.New("at least one category is required")
	ErrInvalidProvider          = errors.New("provider.name must be 'gemini' or 'placeholder'")
	ErrInvalidArticleBounds     = errors.New("articles.min must be at least 1 and not exceed articles.max")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingOutputPath        = errors.New("output.path is required")
	ErrInvalidScheduleTime      = errors.New("schedule.at must be in HH:MM 24-hour format")
	ErrMissingPublishBranch     = errors.New("publish.branch is required when publishing is enabled")
	ErrMissingArchiveDatabase   = errors.New("archive.database and archive.collection are required when archiving is enabled")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Provider names.
const (
	ProviderGemini      = "gemini"
	ProviderPlaceholder = "placeholder"
)

// Config represents the complete runner configuration.
type Config struct {
	Runner RunnerConfig `yaml:"runner"`
}

// RunnerConfig contains runner-specific settings.
type RunnerConfig struct {
	Provider   ProviderConfig `yaml:"provider"`
	Regions    []RegionConfig `yaml:"regions"`
	Categories []string       `yaml:"categories"`
	Articles   ArticleBounds  `yaml:"articles"`
	Schedule   ScheduleConfig `yaml:"schedule"`
	Output     OutputConfig   `yaml:"output"`
	Publish    PublishConfig  `yaml:"publish"`
	Archive    ArchiveConfig  `yaml:"archive"`
	Retry      RetryPolicy    `yaml:"retry"`
	Logging    LoggingConfig  `yaml:"logging"`
}

// ProviderConfig selects and configures the content provider.
type ProviderConfig struct {
	Name        string `yaml:"name"`
	Model       string `yaml:"model"`
	APIKeyEnv   string `yaml:"api_key_env"`
	PairDelayMs int    `yaml:"pair_delay_ms"`
}

// ResolveAPIKey reads the provider credential from the environment.
func (p *ProviderConfig) ResolveAPIKey() string {
	env := p.APIKeyEnv
	if env == "" {
		env = "GEMINI_API_KEY"
	}

	return os.Getenv(env)
}

// PairDelay returns the politeness delay between region/category requests.
func (p *ProviderConfig) PairDelay() time.Duration {
	return time.Duration(p.PairDelayMs) * time.Millisecond
}

// RegionConfig represents one portal region.
type RegionConfig struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// ArticleBounds limits how many articles each region/category pair gets.
type ArticleBounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ScheduleConfig defines the daily trigger time (UTC).
type ScheduleConfig struct {
	At string `yaml:"at"`
}

// TimeOfDay parses the schedule into hour and minute.
func (s *ScheduleConfig) TimeOfDay() (hour, minute int, err error) {
	at := s.At
	if at == "" {
		at = "00:00"
	}

	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidScheduleTime, s.At)
	}

	return parsed.Hour(), parsed.Minute(), nil
}

// RetryPolicy defines retry behavior for generation and push attempts.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// OutputConfig defines artifact output behavior.
type OutputConfig struct {
	Path         string `yaml:"path"`
	ReportPath   string `yaml:"report_path"`
	PrettyPrint  bool   `yaml:"pretty_print"`
	CreateBackup bool   `yaml:"create_backup"`
}

// PublishConfig defines git publication behavior.
type PublishConfig struct {
	Enabled  bool   `yaml:"enabled"`
	RepoPath string `yaml:"repo_path"`
	Remote   string `yaml:"remote"`
	Branch   string `yaml:"branch"`
	BotName  string `yaml:"bot_name"`
	BotEmail string `yaml:"bot_email"`
	TokenEnv string `yaml:"token_env"`
}

// ResolveToken reads the push credential from the environment. An empty
// token means the remote's ambient credentials are used as-is.
func (p *PublishConfig) ResolveToken() string {
	if p.TokenEnv == "" {
		return ""
	}

	return os.Getenv(p.TokenEnv)
}

// ArchiveConfig defines the optional MongoDB run archive.
type ArchiveConfig struct {
	Enabled    bool   `yaml:"enabled"`
	URIEnv     string `yaml:"uri_env"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// ResolveURI reads the MongoDB connection string from the environment.
func (a *ArchiveConfig) ResolveURI() string {
	env := a.URIEnv
	if env == "" {
		env = "MONGO_URI"
	}

	return os.Getenv(env)
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration mirroring the portal's defaults:
// every known region and category, 10-25 articles per pair, daily at
// midnight UTC, updates.json at the repository root.
func DefaultConfig() *Config {
	regions := make([]RegionConfig, 0, len(models.DefaultRegions))
	for _, r := range models.DefaultRegions {
		regions = append(regions, RegionConfig{Key: r.Key, Name: r.Name, Enabled: true})
	}

	return &Config{
		Runner: RunnerConfig{
			Provider: ProviderConfig{
				Name:        ProviderGemini,
				Model:       "gemini-2.5-flash",
				APIKeyEnv:   "GEMINI_API_KEY",
				PairDelayMs: 500,
			},
			Regions:    regions,
			Categories: append([]string(nil), models.DefaultCategories...),
			Articles:   ArticleBounds{Min: 10, Max: 25},
			Schedule:   ScheduleConfig{At: "00:00"},
			Output: OutputConfig{
				Path:        "updates.json",
				PrettyPrint: true,
			},
			Publish: PublishConfig{
				Enabled:  true,
				RepoPath: ".",
				Remote:   "origin",
				Branch:   "main",
				BotName:  "newsrunner-bot",
				BotEmail: "bot@newsrunner.local",
				TokenEnv: "GIT_TOKEN",
			},
			Archive: ArchiveConfig{
				Enabled: false,
				URIEnv:  "MONGO_URI",
			},
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        120,
			},
			Logging: LoggingConfig{Level: "info"},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields left out of the
// file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	r := &c.Runner

	switch r.Provider.Name {
	case ProviderGemini, ProviderPlaceholder:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidProvider, r.Provider.Name)
	}

	if len(r.Regions) == 0 {
		return ErrNoRegions
	}

	enabledCount := 0

	for i, region := range r.Regions {
		if region.Key == "" {
			return fmt.Errorf("%w: regions[%d]", ErrRegionMissingKey, i)
		}

		if region.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledRegions
	}

	if len(r.Categories) == 0 {
		return ErrNoCategories
	}

	if r.Articles.Min < 1 || r.Articles.Min > r.Articles.Max {
		return ErrInvalidArticleBounds
	}

	if _, _, err := r.Schedule.TimeOfDay(); err != nil {
		return err
	}

	// Validate retry policy
	if r.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if r.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if r.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if r.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if r.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if r.Publish.Enabled && r.Publish.Branch == "" {
		return ErrMissingPublishBranch
	}

	if r.Archive.Enabled && (r.Archive.Database == "" || r.Archive.Collection == "") {
		return ErrMissingArchiveDatabase
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[r.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledRegions returns only enabled regions as model values.
func (c *Config) GetEnabledRegions() []models.Region {
	var enabled []models.Region

	for _, region := range c.Runner.Regions {
		if !region.Enabled {
			continue
		}

		name := region.Name
		if name == "" {
			name = region.Key
		}

		enabled = append(enabled, models.Region{Key: region.Key, Name: name})
	}

	return enabled
}

// PairCount returns the number of enabled region/category pairs.
func (c *Config) PairCount() int {
	return len(c.GetEnabledRegions()) * len(c.Runner.Categories)
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-run timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Provider: %s, Regions: %d, Categories: %d, Output: %s}",
		c.Runner.Provider.Name,
		len(c.Runner.Regions),
		len(c.Runner.Categories),
		c.Runner.Output.Path,
	)
}
