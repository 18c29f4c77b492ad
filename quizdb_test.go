package quizextractor

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "decks.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.CloseDB() })
	if err := db.CreateTables(); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func TestImportAndReadBack(t *testing.T) {
	db := openTestDB(t)

	ds := &Dataset{Items: []QuizItem{
		{
			ID:            "1700000000001",
			Question:      "What is osmosis?",
			CorrectAnswer: "Diffusion of water",
			WrongAnswers:  []string{"Cell division", "Oxidation"},
			Difficulty:    DifficultyEasy,
			CreatedAt:     "2026-08-31T10:00:00Z",
		},
		{
			ID:            "1700000000002",
			Question:      "Second question",
			CorrectAnswer: "right",
			WrongAnswers:  []string{"wrong"},
			Difficulty:    DifficultyMedium,
			CreatedAt:     "2026-08-31T10:00:00Z",
			Explanation:   "because",
		},
	}}

	deckID, err := db.ImportDataset("Biology", "export.mhtml", ds)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	deck, err := db.GetDeck(deckID)
	if err != nil {
		t.Fatalf("get deck: %v", err)
	}
	if deck.Name != "Biology" || deck.QuestionCount != 2 {
		t.Fatalf("deck = %+v", deck)
	}

	items, err := db.GetDeckQuestions(deckID)
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d questions", len(items))
	}
	// Import order survives the round trip, and deck name is rehydrated.
	if items[0].Question != "What is osmosis?" || items[0].Deck != "Biology" {
		t.Errorf("first item = %+v", items[0])
	}
	if len(items[0].WrongAnswers) != 2 {
		t.Errorf("wrong answers = %v", items[0].WrongAnswers)
	}
	if items[1].Explanation != "because" {
		t.Errorf("explanation = %q", items[1].Explanation)
	}
}

func TestGetDecksOrderingAndLimit(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"First", "Second", "Third"} {
		ds := &Dataset{Items: []QuizItem{{ID: name, Question: name, CorrectAnswer: "x", WrongAnswers: []string{"y"}, Difficulty: DifficultyEasy, CreatedAt: "2026-08-31T10:00:00Z"}}}
		if _, err := db.ImportDataset(name, "src", ds); err != nil {
			t.Fatalf("import %s: %v", name, err)
		}
	}

	all, err := db.GetDecks(0)
	if err != nil {
		t.Fatalf("get decks: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d decks", len(all))
	}

	limited, err := db.GetDecks(2)
	if err != nil {
		t.Fatalf("get decks limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limit ignored: %d decks", len(limited))
	}
}

func TestDeleteDeck(t *testing.T) {
	db := openTestDB(t)

	ds := &Dataset{Items: []QuizItem{{ID: "1", Question: "q", CorrectAnswer: "a", WrongAnswers: []string{"b"}, Difficulty: DifficultyEasy, CreatedAt: "2026-08-31T10:00:00Z"}}}
	deckID, err := db.ImportDataset("Doomed", "src", ds)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if err := db.DeleteDeck(deckID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetDeck(deckID); err == nil {
		t.Fatal("deck still present after delete")
	}
	items, err := db.GetDeckQuestions(deckID)
	if err == nil && len(items) > 0 {
		t.Fatal("questions still present after delete")
	}
}

func TestWrongAnswersJSONRoundTrip(t *testing.T) {
	in := []string{"alpha", "beta", "with \"quotes\""}
	s, err := WrongAnswersToJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := JSONToWrongAnswers(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[2] != in[2] {
		t.Fatalf("round trip: %v", out)
	}
}
