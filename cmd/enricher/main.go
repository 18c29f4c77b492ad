package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizextractor"
)

func main() {
	var (
		input     = flag.String("input", "", "Quiz JSON file to enrich (required)")
		output    = flag.String("output", "", "Output file (default: <input>_enriched.json)")
		apiKey    = flag.String("api-key", "", "OpenAI API key (or set OPENAI_API_KEY env var)")
		reportDir = flag.String("report", "", "Write LLM request/response log into this directory")
		timeout   = flag.Duration("timeout", 10*time.Minute, "Overall timeout")
		verbose   = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	quizextractor.SetVerbose(*verbose)

	if *input == "" {
		log.Fatal("Input file is required. Use -input flag.")
	}
	if *apiKey == "" {
		*apiKey = os.Getenv("OPENAI_API_KEY")
		if *apiKey == "" {
			log.Fatal("OpenAI API key is required. Use -api-key flag or set OPENAI_API_KEY environment variable.")
		}
	}
	if *output == "" {
		ext := filepath.Ext(*input)
		*output = strings.TrimSuffix(*input, ext) + "_enriched" + ext
	}

	ds, err := quizextractor.LoadDataset(*input)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	var report *quizextractor.ReportLog
	if *reportDir != "" {
		report, err = quizextractor.NewReportLog(*reportDir, "enrich", *input)
		if err != nil {
			log.Fatalf("Failed to create report: %v", err)
		}
		defer report.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	enricher := quizextractor.NewEnricher(*apiKey)
	enriched, err := enricher.EnrichDataset(ctx, ds, report)
	if err != nil {
		// Keep whatever was enriched before the deadline hit.
		log.Printf("Enrichment stopped early: %v", err)
	}

	if err := quizextractor.SaveDataset(*output, ds); err != nil {
		log.Fatalf("Failed to save output: %v", err)
	}
	fmt.Printf("Enrichment complete! %d/%d questions explained, Output: %s\n",
		enriched, len(ds.Items), *output)
}
