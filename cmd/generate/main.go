// Package main provides a one-shot generation command that writes the
// artifact without publishing it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"newsrunner/internal/config"
	"newsrunner/internal/generator"
	"newsrunner/internal/logger"
	"newsrunner/internal/normalizer"
	"newsrunner/internal/publisher"
	"newsrunner/internal/runner"
	"newsrunner/pkg/fingerprint"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	out := flag.String("out", "", "Output path (overrides output.path from config)")
	providerName := flag.String("provider", "", "Provider override: gemini or placeholder")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		cfg.Runner.Output.Path = *out
	}

	if *providerName != "" {
		cfg.Runner.Provider.Name = *providerName

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid provider override: %v\n", err)
			os.Exit(1)
		}
	}

	log := logger.NewLogger(cfg.Runner.Logging.Level)
	ctx := context.Background()

	provider, err := runner.BuildProvider(ctx, cfg)
	if err != nil {
		log.Error("failed to build provider", "error", err)
		os.Exit(1)
	}
	defer provider.Close()

	edition, err := generator.New(provider, cfg, log).GenerateEdition(ctx)
	if err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}

	edition, err = normalizer.NewProcessor(normalizer.RulesFromConfig(cfg)).Process(edition)
	if err != nil {
		log.Error("normalization failed", "error", err)
		os.Exit(1)
	}

	writer := publisher.NewWriter(cfg.Runner.Output)

	data, err := writer.Marshal(edition)
	if err != nil {
		log.Error("marshal failed", "error", err)
		os.Exit(1)
	}

	if err := writer.Write(data); err != nil {
		log.Error("write failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote %d articles to %s (fingerprint %s)\n",
		edition.Total(), cfg.Runner.Output.Path, fingerprint.Compute(data))
}
