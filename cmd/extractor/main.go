package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"quizextractor"
)

func main() {
	var (
		input      = flag.String("input", "", "MHTML export file to extract")
		deck       = flag.String("deck", "", "Deck name for extracted questions (required with -input)")
		output     = flag.String("output", "", "Output JSON file (default: derived from deck name)")
		dbPath     = flag.String("db", "", "Also import the extracted deck into this sqlite library")
		reportDir  = flag.String("report", "", "Write a per-run extraction report into this directory")
		mergeList  = flag.String("merge", "", "Comma-separated quiz JSON files to merge into one")
		backup     = flag.String("backup", "", "Backup file to integrate -source (or -transform output) into")
		source     = flag.String("source", "", "Quiz JSON file to integrate into -backup")
		transform  = flag.String("transform", "", "Foreign quiz JSON file to transform into the canonical shape")
		appendMode = flag.Bool("append", false, "Append to the backup's questions instead of replacing them")
		noClassify = flag.Bool("no-classify", false, "Skip difficulty classification during -transform")
		verbose    = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	quizextractor.SetVerbose(*verbose)

	switch {
	case *input != "":
		runExtract(*input, *deck, *output, *dbPath, *reportDir, *verbose)
	case *mergeList != "":
		runMerge(*mergeList, *output)
	case *transform != "":
		runTransform(*transform, *output, *backup, *appendMode, !*noClassify)
	case *backup != "" && *source != "":
		runBackupMerge(*backup, *source, *output, *appendMode)
	default:
		log.Fatal("Nothing to do. Use -input, -merge, -transform, or -backup with -source.")
	}
}

var unsafeNamePattern = regexp.MustCompile(`[<>:"/\\|?*]`)

func runExtract(input, deck, output, dbPath, reportDir string, verbose bool) {
	if deck == "" {
		log.Fatal("Deck name is required. Use -deck flag.")
	}
	if output == "" {
		safe := unsafeNamePattern.ReplaceAllString(deck, "_")
		output = strings.ToLower(strings.ReplaceAll(safe, " ", "_")) + ".json"
	}

	extractor := quizextractor.NewExtractor(deck)
	if verbose {
		extractor.SetProgress(func(stage string) {
			log.Printf("%s", stage)
		})
	}
	if reportDir != "" {
		report, err := quizextractor.NewReportLog(reportDir, deck, input)
		if err != nil {
			log.Fatalf("Failed to create report: %v", err)
		}
		defer report.Close()
		extractor.SetReport(report)
		log.Printf("Report: %s", report.Path())
	}

	result, err := extractor.ExtractFile(input)
	if err != nil {
		if errors.Is(err, quizextractor.ErrNoQuestions) {
			log.Fatalf("Extraction failed: %v. Please check if this is a valid Google Forms MHTML file.", err)
		}
		log.Fatalf("Extraction failed: %v", err)
	}

	if err := quizextractor.SaveDataset(output, result.Dataset); err != nil {
		log.Fatalf("Failed to save output: %v", err)
	}

	fmt.Printf("Extraction complete! Created %s with %d questions (Easy: %d, Medium: %d, Hard: %d)\n",
		output, len(result.Dataset.Items), result.Stats.Easy, result.Stats.Medium, result.Stats.Hard)
	if result.DuplicatesRemoved > 0 {
		fmt.Printf("Duplicates removed: %d\n", result.DuplicatesRemoved)
	}
	for _, w := range result.Warnings {
		log.Printf("Warning (block %d): %s", w.Block, w.Message)
	}

	if dbPath != "" {
		importIntoLibrary(dbPath, deck, input, result)
	}
}

func importIntoLibrary(dbPath, deck, input string, result *quizextractor.ExtractionResult) {
	db, err := quizextractor.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open deck library: %v", err)
	}
	defer db.CloseDB()

	if err := db.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	deckID, err := db.ImportDataset(deck, filepath.Base(input), result.Dataset)
	if err != nil {
		log.Fatalf("Failed to import deck: %v", err)
	}
	fmt.Printf("Imported into library %s as deck %s\n", dbPath, deckID)
}

func runMerge(mergeList, output string) {
	paths := strings.Split(mergeList, ",")
	for i := range paths {
		paths[i] = strings.TrimSpace(paths[i])
	}

	merged, warnings, err := quizextractor.MergeFiles(paths)
	for _, w := range warnings {
		log.Printf("Warning: %s", w)
	}
	if err != nil {
		log.Fatalf("Merge failed: %v", err)
	}

	if output == "" {
		output = fmt.Sprintf("quizwhiz_export_%s.json", time.Now().Format("20060102_150405"))
	}
	if err := quizextractor.SaveDataset(output, merged); err != nil {
		log.Fatalf("Failed to save merged file: %v", err)
	}
	fmt.Printf("Merge completed! Total questions: %d, Output: %s\n", len(merged.Items), output)
}

func runBackupMerge(backup, source, output string, appendMode bool) {
	if output == "" {
		ext := filepath.Ext(backup)
		output = strings.TrimSuffix(backup, ext) + "_UPDATED" + ext
	}

	count, err := quizextractor.MergeBackup(backup, source, output, appendMode)
	if err != nil {
		log.Fatalf("Backup merge failed: %v", err)
	}
	fmt.Printf("Backup merge complete! Total quizzes: %d, Output: %s\n", count, output)
}

func runTransform(source, output, backup string, appendMode, reclassify bool) {
	if output == "" {
		ext := filepath.Ext(source)
		output = strings.TrimSuffix(source, ext) + "_transformed" + ext
	}

	result, err := quizextractor.Transform(quizextractor.TransformOptions{
		SourcePath: source,
		OutputPath: output,
		BackupPath: backup,
		Append:     appendMode,
		Reclassify: reclassify,
	})
	if err != nil {
		log.Fatalf("Transformation failed: %v", err)
	}

	fmt.Printf("JSON transformation complete! Total questions: %d, Output: %s\n", result.Count, output)
	if reclassify {
		fmt.Printf("Difficulty breakdown: Easy: %d, Medium: %d, Hard: %d\n",
			result.Stats.Easy, result.Stats.Medium, result.Stats.Hard)
	}
}
