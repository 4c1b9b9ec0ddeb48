// Package main provides the seed command: it writes a starter configuration
// and a placeholder-generated artifact so the portal has content before the
// first real API run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"newsrunner/internal/config"
	"newsrunner/internal/generator"
	"newsrunner/internal/logger"
	"newsrunner/internal/publisher"
)

func main() {
	configOut := flag.String("config-out", "config.yaml", "Where to write the starter configuration")
	artifactOut := flag.String("out", "updates.json", "Where to write the placeholder artifact")
	force := flag.Bool("force", false, "Overwrite existing files")
	flag.Parse()

	if !*force {
		for _, path := range []string{*configOut, *artifactOut} {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(os.Stderr, "refusing to overwrite %s (use -force)\n", path)
				os.Exit(1)
			}
		}
	}

	cfg := config.DefaultConfig()
	cfg.Runner.Output.Path = *artifactOut

	if err := cfg.SaveConfig(*configOut); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("info")

	// Seed content comes from the placeholder provider; no API key needed.
	seedCfg := *cfg
	seedCfg.Runner.Provider.Name = config.ProviderPlaceholder
	seedCfg.Runner.Provider.PairDelayMs = 0

	provider := generator.NewPlaceholderProvider(time.Now().UnixNano())

	edition, err := generator.New(provider, &seedCfg, log).GenerateEdition(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed generation failed: %v\n", err)
		os.Exit(1)
	}

	writer := publisher.NewWriter(seedCfg.Runner.Output)

	data, err := writer.Marshal(edition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
		os.Exit(1)
	}

	if err := writer.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote %s and %s (%d placeholder articles)\n", *configOut, *artifactOut, edition.Total())
}
