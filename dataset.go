package quizextractor

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

const datasetKey = "quizwhiz_quizzes"

var (
	underscoreRunPattern = regexp.MustCompile(`_{2,}`)
	decorQuotePattern    = regexp.MustCompile("[\"“”‘’`]")
)

// LoadDataset reads a quiz dataset from disk. A file without the
// quizwhiz_quizzes array, or with the key holding a non-array value, fails
// with ErrBadDataset.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrBadDataset, err)
	}
	raw, ok := doc[datasetKey]
	if !ok {
		return nil, fmt.Errorf("%s: missing %q key: %w", path, datasetKey, ErrBadDataset)
	}

	ds := &Dataset{}
	if err := json.Unmarshal(raw, &ds.Items); err != nil {
		return nil, fmt.Errorf("%s: %q is not a question array: %w", path, datasetKey, ErrBadDataset)
	}
	if raw, ok := doc["exportDate"]; ok {
		json.Unmarshal(raw, &ds.ExportDate)
	}
	if raw, ok := doc["exportVersion"]; ok {
		json.Unmarshal(raw, &ds.ExportVersion)
	}

	VerboseLog("Loaded %d questions from %s", len(ds.Items), path)
	return ds, nil
}

// SaveDataset writes a dataset as indented JSON.
func SaveDataset(path string, ds *Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// NormalizeQuestion produces the canonical form used for duplicate
// detection: lowercased, trimmed, runs of two or more underscores collapsed
// to one blank marker, whitespace runs collapsed, quotes removed. The quote
// class covers straight double quotes and backticks plus the curly variants
// word processors substitute for them.
func NormalizeQuestion(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = underscoreRunPattern.ReplaceAllString(normalized, "_____")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	normalized = decorQuotePattern.ReplaceAllString(normalized, "")
	return normalized
}

// DedupItems removes items whose normalized question text was already seen,
// keeping the first occurrence. Dedup spans the whole set, not one block,
// and is idempotent: running it on its own output removes nothing.
func DedupItems(items []QuizItem) (unique []QuizItem, removed int) {
	seen := make(map[string]bool, len(items))
	unique = make([]QuizItem, 0, len(items))
	for _, item := range items {
		key := NormalizeQuestion(item.Question)
		if seen[key] {
			removed++
			VerboseLog("Removed duplicate: %.60s", item.Question)
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	return unique, removed
}
