package quizextractor

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Version written into a backup document's exportVersion field after a merge
// touches it.
const mergedExportVersion = "2.1"

// MergeFiles concatenates the question arrays of the given dataset files in
// input order. No deduplication happens here: dedup is solely the
// extraction assembler's job. Files that are missing or invalid are skipped
// and reported as warnings; the merge only fails when no file yields data.
func MergeFiles(paths []string) (*Dataset, []string, error) {
	var warnings []string
	merged := &Dataset{}

	VerboseLog("Merging %d files...", len(paths))
	for _, path := range paths {
		ds, err := LoadDataset(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", path, err))
			VerboseLog("Warning: skipped %s: %v", path, err)
			continue
		}
		merged.Items = append(merged.Items, ds.Items...)
	}

	if len(merged.Items) == 0 {
		return nil, warnings, fmt.Errorf("no valid quiz data found in any of the files")
	}
	return merged, warnings, nil
}

// MergeBackup integrates a quiz dataset into an existing backup document.
// The backup's quizwhiz_quizzes array is either replaced wholesale or
// appended to; every other key in the backup is preserved untouched, except
// that exportDate/exportVersion are bumped when already present. Returns
// the final question count.
func MergeBackup(backupPath, quizPath, outputPath string, appendMode bool) (int, error) {
	backup, err := loadJSONObject(backupPath)
	if err != nil {
		return 0, err
	}
	VerboseLog("Loaded backup file with %d existing questions", backupArrayLen(backup))

	quiz, err := LoadDataset(quizPath)
	if err != nil {
		return 0, err
	}

	items, err := itemsToAny(quiz.Items)
	if err != nil {
		return 0, err
	}

	if appendMode {
		existing, _ := backup[datasetKey].([]interface{})
		backup[datasetKey] = append(existing, items...)
	} else {
		backup[datasetKey] = items
	}
	bumpExportMetadata(backup)

	if err := saveJSONObject(outputPath, backup); err != nil {
		return 0, err
	}

	final := backupArrayLen(backup)
	VerboseLog("Backup merge complete: %d questions (%s mode)", final, mergeModeName(appendMode))
	return final, nil
}

func mergeModeName(appendMode bool) string {
	if appendMode {
		return "append"
	}
	return "replace"
}

func loadJSONObject(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrBadDataset, err)
	}
	return doc, nil
}

func saveJSONObject(path string, doc map[string]interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func backupArrayLen(doc map[string]interface{}) int {
	arr, _ := doc[datasetKey].([]interface{})
	return len(arr)
}

// itemsToAny converts typed items into the generic form backup documents
// are edited in.
func itemsToAny(items []QuizItem) ([]interface{}, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	var generic []interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("convert items: %w", err)
	}
	return generic, nil
}

// bumpExportMetadata refreshes timestamp/version fields, but only when the
// document already carries them: unknown sibling keys stay untouched and
// absent metadata is not invented.
func bumpExportMetadata(doc map[string]interface{}) {
	if _, ok := doc["exportDate"]; ok {
		doc["exportDate"] = time.Now().UTC().Format(time.RFC3339)
	}
	if _, ok := doc["exportVersion"]; ok {
		doc["exportVersion"] = mergedExportVersion
	}
}
