// Package main provides a one-shot publish command for an existing artifact.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
	"newsrunner/internal/publisher"
	"newsrunner/internal/validator"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	file := flag.String("file", "", "Artifact to publish (defaults to output.path)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	path := *file
	if path == "" {
		path = cfg.Runner.Output.Path
	}

	log := logger.NewLogger(cfg.Runner.Logging.Level)

	// Never publish a file that fails schema validation.
	_, report, err := validator.ValidateFile(path)
	if err != nil {
		log.Error("artifact unreadable", "path", path, "error", err)
		os.Exit(1)
	}

	if !report.Valid() {
		log.Error("artifact failed validation", "path", path, "problems", len(report.Problems))

		for _, problem := range report.Problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", problem)
		}

		os.Exit(1)
	}

	ctx := context.Background()
	git := publisher.NewGitPublisher(cfg.Runner.Publish, cfg.Runner.Retry, log)

	changed, err := git.HasStagedChanges(ctx, path)
	if err != nil {
		log.Error("failed to check working tree", "error", err)
		os.Exit(1)
	}

	if !changed {
		fmt.Println("ℹ️  No changes to publish")

		return
	}

	message := fmt.Sprintf("Update portal content: %s", time.Now().UTC().Format("2006-01-02 15:04:05"))
	if err := git.Publish(ctx, path, message); err != nil {
		log.Error("publish failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Published %s (%d articles)\n", path, report.Articles)
}
