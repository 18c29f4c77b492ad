package quizextractor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSniffQuestions(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantShape string
		wantLen   int
	}{
		{
			name:      "canonical key",
			source:    `{"exportDate":"x","quizwhiz_quizzes":[{"question":"q1"},{"question":"q2"}]}`,
			wantShape: ShapeQuizWhiz,
			wantLen:   2,
		},
		{
			name:      "bare array",
			source:    `[{"question":"q1"}]`,
			wantShape: ShapeArray,
			wantLen:   1,
		},
		{
			name:      "generic questions key",
			source:    `{"title":"My Quiz","questions":[{"text":"q1"},{"text":"q2"},{"text":"q3"}]}`,
			wantShape: ShapeGeneric,
			wantLen:   3,
		},
		{
			name:      "custom key found by scan",
			source:    `{"meta":{"v":1},"tags":["a"],"items":[{"prompt":"q1","choices":["x","y"]}]}`,
			wantShape: ShapeSniffed,
			wantLen:   1,
		},
		{
			name:      "canonical key wins over questions key",
			source:    `{"questions":[{"question":"other"}],"quizwhiz_quizzes":[{"question":"q1"}]}`,
			wantShape: ShapeQuizWhiz,
			wantLen:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, shape, err := SniffQuestions([]byte(tt.source))
			if err != nil {
				t.Fatalf("sniff: %v", err)
			}
			if shape != tt.wantShape {
				t.Errorf("shape = %q, want %q", shape, tt.wantShape)
			}
			if len(items) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(items), tt.wantLen)
			}
		})
	}
}

func TestSniffQuestionsUnidentifiable(t *testing.T) {
	sources := []string{
		`{"settings":{"theme":"dark"},"counts":[1,2,3]}`,
		`{"items":[{"label":"not a question"}]}`,
		`not json at all`,
	}
	for _, src := range sources {
		if _, _, err := SniffQuestions([]byte(src)); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestTransformFreshOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foreign.json")
	source := `{"questions":[
		{"text":"What is the capital of France?","choices":["Paris","London"],"answer":"Paris"},
		{"text":"What teaching strategy will I need to employ to develop critical thinking and problem solving?","choices":["Lecture","Role playing"],"answer":"Role playing"}
	]}`
	if err := os.WriteFile(src, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.json")

	var stages []string
	result, err := Transform(TransformOptions{
		SourcePath: src,
		OutputPath: out,
		Reclassify: true,
		Progress:   func(stage string) { stages = append(stages, stage) },
	})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if result.Count != 2 || result.Shape != ShapeGeneric {
		t.Fatalf("result = %+v", result)
	}
	if result.Stats.Easy != 1 || result.Stats.Hard != 1 {
		t.Fatalf("stats = %+v", result.Stats)
	}
	if len(stages) == 0 {
		t.Error("no progress reported")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	arr, _ := doc["quizwhiz_quizzes"].([]interface{})
	if len(arr) != 2 {
		t.Fatalf("output array has %d entries", len(arr))
	}
	first, _ := arr[0].(map[string]interface{})
	if first["difficulty"] != DifficultyEasy {
		t.Errorf("first difficulty = %v", first["difficulty"])
	}
	if doc["exportVersion"] != mergedExportVersion {
		t.Errorf("exportVersion = %v", doc["exportVersion"])
	}
}

func TestTransformIntoBackupAppend(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foreign.json")
	if err := os.WriteFile(src, []byte(`[{"question":"q new"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	backup := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(backup, []byte(`{"quizwhiz_quizzes":[{"question":"q old"}],"settings":{"a":1}}`), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.json")

	result, err := Transform(TransformOptions{
		SourcePath: src,
		OutputPath: out,
		BackupPath: backup,
		Append:     true,
	})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("count = %d, want 2", result.Count)
	}

	data, _ := os.ReadFile(out)
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["settings"]; !ok {
		t.Error("backup sibling key lost")
	}
}

func TestTransformProgressPanicIgnored(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	if err := os.WriteFile(src, []byte(`[{"question":"q"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.json")

	_, err := Transform(TransformOptions{
		SourcePath: src,
		OutputPath: out,
		Progress:   func(string) { panic("listener bug") },
	})
	if err != nil {
		t.Fatalf("a panicking progress listener must not break the run: %v", err)
	}
}
