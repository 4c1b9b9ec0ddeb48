// Package main provides a validation command for updates.json artifacts.
package main

import (
	"flag"
	"fmt"
	"os"

	"newsrunner/internal/validator"
	"newsrunner/pkg/fingerprint"
)

func main() {
	file := flag.String("file", "updates.json", "Artifact to validate")
	flag.Parse()

	edition, report, err := validator.ValidateFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fp, err := fingerprint.ComputeFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------")
	fmt.Printf("📊 Validation Report: %s\n", *file)
	fmt.Println("------------------------------------------------")
	fmt.Printf("Regions:     %d\n", report.Regions)
	fmt.Printf("Pairs:       %d\n", report.Pairs)
	fmt.Printf("Articles:    %d (%d total in edition)\n", report.Articles, edition.Total())
	fmt.Printf("Fingerprint: %s\n", fp)

	if report.Valid() {
		fmt.Println("✅ Valid")

		return
	}

	fmt.Printf("⚠️  Problems: %d\n", len(report.Problems))

	for _, problem := range report.Problems {
		fmt.Printf("  - %s\n", problem)
	}

	os.Exit(1)
}
