package quizextractor

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// ProgressFunc receives named pipeline stage announcements. It is invoked
// synchronously at stage boundaries; a panicking callback is recovered and
// ignored so it can never abort extraction.
type ProgressFunc func(stage string)

// Extractor runs the full extraction pipeline for one document: decode,
// segment, per-block field extraction, answer resolution, difficulty
// classification, and run-wide dedup. One Extractor per document; separate
// invocations share no state.
type Extractor struct {
	deck     string
	progress ProgressFunc
	report   *ReportLog
}

// NewExtractor creates an extractor that labels records with the given deck name.
func NewExtractor(deck string) *Extractor {
	return &Extractor{deck: deck}
}

// SetProgress installs a progress callback.
func (e *Extractor) SetProgress(fn ProgressFunc) {
	e.progress = fn
}

// SetReport attaches a per-run report log.
func (e *Extractor) SetReport(report *ReportLog) {
	e.report = report
}

// ExtractFile reads an export file and extracts its quiz data.
func (e *Extractor) ExtractFile(path string) (*ExtractionResult, error) {
	e.announce("Reading export file...")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	return e.Extract(string(data))
}

// Extract runs the pipeline over raw document text.
func (e *Extractor) Extract(content string) (*ExtractionResult, error) {
	e.announce("Extracting HTML content...")

	result := &ExtractionResult{}

	html, err := ExtractHTML(content)
	if err != nil {
		if !errors.Is(err, ErrDecodeFailed) {
			return nil, err
		}
		// Garbled text still beats aborting; note it and continue.
		result.Warnings = append(result.Warnings, Warning{Message: err.Error()})
		VerboseLog("Decode fallback: %v", err)
	}

	e.announce("Finding question blocks...")

	blocks := SplitBlocks(html)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: not a supported export format", ErrNoQuestions)
	}
	result.BlockCount = len(blocks)
	VerboseLog("Found %d question blocks", len(blocks))

	e.announce(fmt.Sprintf("Processing %d questions...", len(blocks)))

	createdAt := time.Now().UTC().Format(time.RFC3339)
	items := make([]QuizItem, 0, len(blocks))

	for i, block := range blocks {
		e.announce(fmt.Sprintf("Processing question %d/%d...", i+1, len(blocks)))

		item, warnings := e.processBlock(block, i, createdAt)
		result.Warnings = append(result.Warnings, warnings...)
		if item == nil {
			result.SkippedBlocks++
			continue
		}
		items = append(items, *item)
	}

	e.announce("Removing duplicates...")

	unique, removed := DedupItems(items)
	result.Dataset = &Dataset{Items: unique}
	result.DuplicatesRemoved = removed
	result.Stats = TallyDifficulty(unique)

	if e.report != nil {
		e.report.LogSummary(result)
	}
	VerboseLog("Extraction complete: %d blocks, %d kept, %d duplicates removed",
		result.BlockCount, len(unique), removed)

	return result, nil
}

// processBlock turns one question block into a record. A nil item means the
// block was dropped (no options); warnings report drops and low-confidence
// answer defaults.
func (e *Extractor) processBlock(block string, index int, createdAt string) (*QuizItem, []Warning) {
	var warnings []Warning

	question, ok := ExtractQuestionText(block)
	if !ok || question == "" {
		// Positional placeholder beats failing the whole block.
		question = fmt.Sprintf("Question %d", index+1)
	}

	options := ExtractOptions(block)
	if len(options) == 0 {
		warnings = append(warnings, Warning{
			Block:   index + 1,
			Message: "no options found, block skipped",
		})
		if e.report != nil {
			e.report.LogSkip(index+1, "no options found")
		}
		VerboseLog("No options found for question %d, skipping...", index+1)
		return nil, warnings
	}

	res := ResolveAnswer(block, options)
	if res.Method == ResolveDefault {
		warnings = append(warnings, Warning{
			Block:   index + 1,
			Message: "could not determine correct answer, defaulting to first option",
		})
		VerboseLog("Warning: could not determine correct answer for question %d, defaulting to first option", index+1)
	}

	difficulty := ClassifyDifficulty(question, options, res.Answer)

	wrong := make([]string, 0, len(options)-1)
	for _, opt := range options {
		if opt != res.Answer {
			wrong = append(wrong, StripOptionMarker(opt))
		}
	}

	item := &QuizItem{
		ID:            strconv.FormatInt(time.Now().UnixMilli()+int64(index), 10),
		Deck:          e.deck,
		Question:      question,
		CorrectAnswer: StripOptionMarker(res.Answer),
		WrongAnswers:  wrong,
		Difficulty:    difficulty,
		CreatedAt:     createdAt,
	}

	if e.report != nil {
		e.report.LogBlock(index+1, question, res.Method, len(options), difficulty)
	}
	return item, warnings
}

// announce invokes the progress callback, shielding the pipeline from
// callback panics.
func (e *Extractor) announce(stage string) {
	if e.progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("progress callback panicked at %q: %v", stage, r)
		}
	}()
	e.progress(stage)
}
