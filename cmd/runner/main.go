// Package main provides the scheduled runner daemon that generates and
// publishes portal content.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/tilinna/clock"

	"newsrunner/internal/archive"
	"newsrunner/internal/config"
	"newsrunner/internal/formatter"
	"newsrunner/internal/logger"
	"newsrunner/internal/models"
	"newsrunner/internal/runner"
	"newsrunner/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	once := flag.Bool("once", false, "Run a single pipeline pass and exit (manual dispatch)")
	dryRun := flag.Bool("dry-run", false, "Write the artifact but skip git publication")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		// No .env file is fine; secrets come from the environment then.
		fmt.Fprintln(os.Stderr, "no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Runner.Logging.Level)

	if *dryRun {
		cfg.Runner.Publish.Enabled = false

		log.Info("dry run: git publication disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("🚀 Starting newsrunner", "config", cfg.String())

	provider, err := runner.BuildProvider(ctx, cfg)
	if err != nil {
		log.Error("failed to build provider", "error", err)
		os.Exit(1)
	}

	var store *archive.Store

	if cfg.Runner.Archive.Enabled {
		store, err = archive.NewStore(ctx, cfg.Runner.Archive, log)
		if err != nil {
			log.Error("failed to connect archive store", "error", err)
			os.Exit(1)
		}
	}

	pipeline := runner.NewPipeline(cfg, provider, store, log)
	defer pipeline.Close(context.Background())

	job := func(ctx context.Context) error {
		run, edition, err := pipeline.RunOnce(ctx)
		if err != nil {
			return err
		}

		report(cfg, log, run, edition)

		return nil
	}

	if *once {
		if err := job(ctx); err != nil {
			log.Error("run failed", "error", err)
			os.Exit(1)
		}

		return
	}

	sched, err := scheduler.New(cfg.Runner.Schedule, job, log)
	if err != nil {
		log.Error("invalid schedule", "error", err)
		os.Exit(1)
	}

	if err := sched.Run(clock.Context(ctx, clock.Realtime())); err != nil && ctx.Err() == nil {
		log.Error("scheduler stopped", "error", err)
		os.Exit(1)
	}

	log.Info("shutting down")
}

// report renders the run summary to stdout and, when configured, to a file.
func report(cfg *config.Config, log *logger.Logger, run *models.RunRecord, edition models.Edition) {
	rendered := formatter.NewReport(run, edition, cfg.Runner.Categories).Render()

	fmt.Println(rendered)

	if path := cfg.Runner.Output.ReportPath; path != "" {
		if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
			log.Warn("failed to write report file", "path", path, "error", err)
		}
	}
}
