package quizextractor

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  What is DNA?  ", "what is dna?"},
		{"Fill in: ________ is the powerhouse.", "fill in: _____ is the powerhouse."},
		{"spaced\t\tout   text", "spaced out text"},
		{`What is "photosynthesis"?`, "what is photosynthesis?"},
		{"“smart quotes” and ‘ticks’ and `backticks`", "smart quotes and ticks and backticks"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeQuestion(tt.in); got != tt.want {
			t.Errorf("NormalizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDedupItems(t *testing.T) {
	items := []QuizItem{
		{ID: "1", Question: "What is osmosis?", Difficulty: DifficultyEasy},
		{ID: "2", Question: "  what is OSMOSIS?  ", Difficulty: DifficultyHard},
		{ID: "3", Question: "Fill in ____ here", Difficulty: DifficultyEasy},
		{ID: "4", Question: "fill in __________ here", Difficulty: DifficultyEasy},
		{ID: "5", Question: "Unrelated", Difficulty: DifficultyEasy},
		{ID: "6", Question: `What is "photosynthesis"?`, Difficulty: DifficultyEasy},
		{ID: "7", Question: "what is photosynthesis?", Difficulty: DifficultyEasy},
	}

	unique, removed := DedupItems(items)
	if removed != 3 {
		t.Fatalf("removed = %d, want 3", removed)
	}
	// First occurrence wins.
	ids := make([]string, len(unique))
	for i, item := range unique {
		ids[i] = item.ID
	}
	if !reflect.DeepEqual(ids, []string{"1", "3", "5", "6"}) {
		t.Fatalf("kept %v", ids)
	}

	// Idempotent on its own output.
	again, removedAgain := DedupItems(unique)
	if removedAgain != 0 || len(again) != len(unique) {
		t.Fatalf("second pass removed %d", removedAgain)
	}
}

func TestSaveLoadDatasetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.json")

	ds := &Dataset{
		Items: []QuizItem{
			{
				ID:            "1700000000001",
				Deck:          "Biology",
				Question:      "What is osmosis?",
				CorrectAnswer: "Diffusion of water",
				WrongAnswers:  []string{"Cell division", "Protein synthesis", "Oxidation"},
				Difficulty:    DifficultyEasy,
				CreatedAt:     "2026-08-31T10:00:00Z",
			},
		},
		ExportDate:    "2026-08-31T10:00:00Z",
		ExportVersion: "2.1",
	}
	if err := SaveDataset(path, ds); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, ds) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, ds)
	}
}

func TestLoadDatasetMissingKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"questions": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDataset(path)
	if !errors.Is(err, ErrBadDataset) {
		t.Fatalf("expected ErrBadDataset, got %v", err)
	}
}

func TestLoadDatasetKeyNotArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"quizwhiz_quizzes": "nope"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDataset(path)
	if !errors.Is(err, ErrBadDataset) {
		t.Fatalf("expected ErrBadDataset, got %v", err)
	}
}
