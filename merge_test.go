package quizextractor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, dir, name string, items []QuizItem) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := SaveDataset(path, &Dataset{Items: items}); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleItems(deck string, n int) []QuizItem {
	items := make([]QuizItem, n)
	for i := range items {
		items[i] = QuizItem{
			ID:            deck + "-" + string(rune('1'+i)),
			Deck:          deck,
			Question:      deck + " question " + string(rune('1'+i)),
			CorrectAnswer: "right",
			WrongAnswers:  []string{"wrong1", "wrong2"},
			Difficulty:    DifficultyEasy,
			CreatedAt:     "2026-08-31T10:00:00Z",
		}
	}
	return items
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeDataset(t, dir, "a.json", sampleItems("Alpha", 2))
	b := writeDataset(t, dir, "b.json", sampleItems("Beta", 3))

	merged, warnings, err := MergeFiles([]string{a, b})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(merged.Items) != 5 {
		t.Fatalf("merged %d items, want 5", len(merged.Items))
	}
	// Input order is preserved, duplicates are not this stage's problem.
	if merged.Items[0].Deck != "Alpha" || merged.Items[4].Deck != "Beta" {
		t.Fatalf("order broken: first %s last %s", merged.Items[0].Deck, merged.Items[4].Deck)
	}
}

func TestMergeFilesSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	good := writeDataset(t, dir, "good.json", sampleItems("Gamma", 1))
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	merged, warnings, err := MergeFiles([]string{bad, good, filepath.Join(dir, "missing.json")})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(merged.Items) != 1 {
		t.Fatalf("merged %d items, want 1", len(merged.Items))
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want two", warnings)
	}
}

func TestMergeFilesAllInvalid(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := MergeFiles([]string{filepath.Join(dir, "nope.json")}); err == nil {
		t.Fatal("expected error when nothing merges")
	}
}

func TestMergeBackupReplacePreservesSiblings(t *testing.T) {
	dir := t.TempDir()

	backup := map[string]interface{}{
		"settings":        map[string]interface{}{"theme": "dark"},
		"studyStats":      map[string]interface{}{"streak": 12},
		"exportDate":      "2025-01-01T00:00:00Z",
		"exportVersion":   "1.0",
		"quizwhiz_quizzes": []interface{}{map[string]interface{}{"id": "old", "question": "stale"}},
	}
	backupPath := filepath.Join(dir, "backup.json")
	data, _ := json.Marshal(backup)
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		t.Fatal(err)
	}
	quizPath := writeDataset(t, dir, "quiz.json", sampleItems("Delta", 2))
	outPath := filepath.Join(dir, "out.json")

	count, err := MergeBackup(backupPath, quizPath, outPath, false)
	if err != nil {
		t.Fatalf("merge backup: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}

	settings, ok := doc["settings"].(map[string]interface{})
	if !ok || settings["theme"] != "dark" {
		t.Errorf("sibling settings lost: %v", doc["settings"])
	}
	if _, ok := doc["studyStats"]; !ok {
		t.Error("sibling studyStats lost")
	}
	if doc["exportVersion"] != mergedExportVersion {
		t.Errorf("exportVersion = %v, want %s", doc["exportVersion"], mergedExportVersion)
	}
	if doc["exportDate"] == "2025-01-01T00:00:00Z" {
		t.Error("exportDate not refreshed")
	}
	arr, _ := doc["quizwhiz_quizzes"].([]interface{})
	if len(arr) != 2 {
		t.Fatalf("replaced array has %d entries, want 2", len(arr))
	}
}

func TestMergeBackupAppend(t *testing.T) {
	dir := t.TempDir()

	backupPath := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(backupPath, []byte(`{"quizwhiz_quizzes":[{"id":"keep","question":"kept"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	quizPath := writeDataset(t, dir, "quiz.json", sampleItems("Echo", 3))
	outPath := filepath.Join(dir, "out.json")

	count, err := MergeBackup(backupPath, quizPath, outPath, true)
	if err != nil {
		t.Fatalf("merge backup: %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}

	// Version metadata absent in the backup must not be invented.
	out, _ := os.ReadFile(outPath)
	var doc map[string]interface{}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["exportVersion"]; ok {
		t.Error("exportVersion invented on a backup that never had one")
	}
	arr, _ := doc["quizwhiz_quizzes"].([]interface{})
	first, _ := arr[0].(map[string]interface{})
	if first["id"] != "keep" {
		t.Errorf("existing entry displaced: %v", first)
	}
}
