package quizextractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// TransformOptions configures one transformer run.
type TransformOptions struct {
	SourcePath string
	OutputPath string
	BackupPath string // optional: integrate the result into this backup
	Append     bool   // append to the backup instead of replacing
	Reclassify bool   // run the difficulty classifier over every item
	Progress   ProgressFunc
}

// TransformResult reports what the transformer did.
type TransformResult struct {
	Count int
	Shape string // which source-shape candidate matched
	Stats DifficultyStats
}

// Source shapes, tried in priority order.
const (
	ShapeQuizWhiz = "quizwhiz"  // quizwhiz_quizzes key
	ShapeArray    = "array"     // top-level question array
	ShapeGeneric  = "questions" // generic quiz format with a questions key
	ShapeSniffed  = "sniffed"   // heuristic: first array-of-objects with a question-like key
)

// Ordered field-name candidates for foreign question objects. These are
// explicit resolution rules, not runtime duck-typing: the first present
// candidate wins.
var (
	questionFieldCandidates = []string{"question", "text", "prompt"}
	optionsFieldCandidates  = []string{"options", "choices", "answers"}
	answerFieldCandidates   = []string{"correct", "correctAnswer", "answer"}
)

// Transform imports a foreign quiz JSON file: sniffs which of several known
// shapes it uses, optionally reclassifies every item's difficulty, and
// writes the result either as a fresh canonical dataset or integrated into
// an existing backup document.
func Transform(opts TransformOptions) (*TransformResult, error) {
	announce := func(stage string) {
		if opts.Progress != nil {
			func() {
				defer func() { recover() }()
				opts.Progress(stage)
			}()
		}
	}

	announce("Loading source file...")
	data, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.SourcePath, err)
	}

	announce("Validating source structure...")
	items, shape, err := SniffQuestions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.SourcePath, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: no questions found in source file", opts.SourcePath)
	}
	VerboseLog("Source format: %s (%d questions)", shape, len(items))

	result := &TransformResult{Count: len(items), Shape: shape}

	if opts.Reclassify {
		announce("Applying difficulty classification...")
		for i, item := range items {
			if i%10 == 0 {
				announce(fmt.Sprintf("Processing question %d/%d...", i+1, len(items)))
			}
			difficulty := ClassifyDifficulty(
				firstStringField(item, questionFieldCandidates),
				firstListField(item, optionsFieldCandidates),
				firstStringField(item, answerFieldCandidates),
			)
			item["difficulty"] = difficulty
			result.Stats.Add(difficulty)
		}
	}

	generic := make([]interface{}, len(items))
	for i, item := range items {
		generic[i] = item
	}

	var final map[string]interface{}
	if opts.BackupPath != "" {
		announce("Integrating with backup file...")
		backup, err := loadJSONObject(opts.BackupPath)
		if err != nil {
			return nil, err
		}
		if opts.Append {
			existing, _ := backup[datasetKey].([]interface{})
			backup[datasetKey] = append(existing, generic...)
		} else {
			backup[datasetKey] = generic
		}
		bumpExportMetadata(backup)
		final = backup
		result.Count = backupArrayLen(backup)
	} else {
		final = map[string]interface{}{
			datasetKey:      generic,
			"exportDate":    time.Now().UTC().Format(time.RFC3339),
			"exportVersion": mergedExportVersion,
		}
	}

	announce("Saving transformed file...")
	if err := saveJSONObject(opts.OutputPath, final); err != nil {
		return nil, err
	}
	return result, nil
}

// SniffQuestions resolves the question array of a foreign quiz document.
// Candidates in priority order: the canonical quizwhiz_quizzes key, a bare
// top-level array, a generic questions key, then the first array-of-objects
// field (in document order) whose first element carries a question-like key.
func SniffQuestions(data []byte) ([]map[string]interface{}, string, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		items, err := decodeItemArray(data)
		if err != nil {
			return nil, "", err
		}
		return items, ShapeArray, nil
	}

	fields, err := decodeOrderedObject(data)
	if err != nil {
		return nil, "", err
	}

	for _, want := range []struct{ key, shape string }{
		{datasetKey, ShapeQuizWhiz},
		{"questions", ShapeGeneric},
	} {
		for _, f := range fields {
			if f.key != want.key {
				continue
			}
			items, err := decodeItemArray(f.raw)
			if err != nil {
				return nil, "", err
			}
			return items, want.shape, nil
		}
	}

	// Heuristic scan: any array field whose objects look like questions.
	for _, f := range fields {
		items, err := decodeItemArray(f.raw)
		if err != nil || len(items) == 0 {
			continue
		}
		if hasQuestionLikeKey(items[0]) {
			VerboseLog("Source format: custom format with %q key", f.key)
			return items, ShapeSniffed, nil
		}
	}
	return nil, "", fmt.Errorf("could not identify question structure in source file")
}

func hasQuestionLikeKey(item map[string]interface{}) bool {
	for _, key := range questionFieldCandidates {
		if _, ok := item[key]; ok {
			return true
		}
	}
	return false
}

type orderedField struct {
	key string
	raw json.RawMessage
}

// decodeOrderedObject reads a JSON object's top-level fields in document
// order. Plain map decoding would randomize the order and make the
// heuristic scan nondeterministic.
func decodeOrderedObject(data []byte) ([]orderedField, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse source: %w: %v", ErrBadDataset, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse source: not a JSON object: %w", ErrBadDataset)
	}

	var fields []orderedField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse source: %w: %v", ErrBadDataset, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse source: %w", ErrBadDataset)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse source: %w: %v", ErrBadDataset, err)
		}
		fields = append(fields, orderedField{key: key, raw: raw})
	}
	return fields, nil
}

func decodeItemArray(raw []byte) ([]map[string]interface{}, error) {
	var items []map[string]interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("question array has wrong shape: %w", ErrBadDataset)
	}
	return items, nil
}

// firstStringField returns the first candidate field present on the item,
// coerced to a string.
func firstStringField(item map[string]interface{}, candidates []string) string {
	for _, key := range candidates {
		if v, ok := item[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

// firstListField returns the first candidate field holding an array,
// coerced to strings.
func firstListField(item map[string]interface{}, candidates []string) []string {
	for _, key := range candidates {
		arr, ok := item[key].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", v))
			}
		}
		return out
	}
	return nil
}
