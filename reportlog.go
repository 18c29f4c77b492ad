package quizextractor

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ReportLog writes a per-run extraction report to a file, one timestamped
// line per event. It backs the verbose/diagnostic output: block skips and
// low-confidence answer defaults land here without ever failing the run.
type ReportLog struct {
	file *os.File
	mu   sync.Mutex
	deck string
}

// NewReportLog creates a report log for one extraction run.
func NewReportLog(dir, deck, sourceFile string) (*ReportLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("extract_%s.log", time.Now().Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	report := &ReportLog{file: file, deck: deck}

	report.Logf("=== Quiz Extraction Report ===\n")
	report.Logf("Deck: %s\n", deck)
	report.Logf("Source: %s\n", sourceFile)
	report.Logf("Started: %s\n", time.Now().Format(time.RFC3339))
	report.Logf("==============================\n\n")

	return report, nil
}

// Path returns the report file location.
func (r *ReportLog) Path() string {
	return r.file.Name()
}

// Logf writes a formatted entry with timestamp
func (r *ReportLog) Logf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	message := fmt.Sprintf(format, args...)

	fmt.Fprintf(r.file, "[%s] %s", timestamp, message)
	r.file.Sync()
}

// LogBlock records one successfully processed question block.
func (r *ReportLog) LogBlock(block int, question, method string, optionCount int, difficulty string) {
	r.Logf("Block %d: %.60q options=%d resolved=%s difficulty=%s\n",
		block, question, optionCount, method, difficulty)
}

// LogSkip records a dropped block.
func (r *ReportLog) LogSkip(block int, reason string) {
	r.Logf("Block %d: SKIPPED - %s\n", block, reason)
}

// LogSummary records the run totals.
func (r *ReportLog) LogSummary(result *ExtractionResult) {
	r.Logf("=== Summary ===\n")
	r.Logf("Blocks: %d\n", result.BlockCount)
	r.Logf("Skipped: %d\n", result.SkippedBlocks)
	r.Logf("Duplicates removed: %d\n", result.DuplicatesRemoved)
	if result.Dataset != nil {
		r.Logf("Final questions: %d\n", len(result.Dataset.Items))
	}
	r.Logf("Difficulty: easy=%d medium=%d hard=%d\n",
		result.Stats.Easy, result.Stats.Medium, result.Stats.Hard)
	for _, w := range result.Warnings {
		r.Logf("Warning (block %d): %s\n", w.Block, w.Message)
	}
}

// Close finalizes and closes the report file.
func (r *ReportLog) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file != nil {
		timestamp := time.Now().Format("15:04:05.000")
		fmt.Fprintf(r.file, "[%s] Completed: %s\n", timestamp, time.Now().Format(time.RFC3339))
		return r.file.Close()
	}
	return nil
}
