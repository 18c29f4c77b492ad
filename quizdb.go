package quizextractor

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB represents a deck library: a local sqlite store of extracted decks.
type DB struct {
	db *sql.DB
}

// Deck represents one imported deck in the library
type Deck struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SourceFile    string    `json:"source_file"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// OpenDB opens a new database connection
func OpenDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() error {
	return db.db.Close()
}

// CreateTables creates the necessary tables if they don't exist
func (db *DB) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			source_file TEXT,
			question_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			deck_id TEXT NOT NULL,
			question_num INTEGER NOT NULL,
			question TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			wrong_answers TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			explanation TEXT,
			created_at TEXT NOT NULL,
			FOREIGN KEY (deck_id) REFERENCES decks(id)
		)`,
	}

	for _, query := range queries {
		if _, err := db.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute %s: %w", query, err)
		}
	}
	return nil
}

// ImportDataset stores an extracted dataset as a new deck and returns the
// deck ID.
func (db *DB) ImportDataset(name, sourceFile string, ds *Dataset) (string, error) {
	deckID := generateDeckID()

	tx, err := db.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO decks (id, name, source_file, question_count, created_at) VALUES (?, ?, ?, ?, ?)",
		deckID, name, sourceFile, len(ds.Items), time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create deck: %w", err)
	}

	for i, item := range ds.Items {
		wrongJSON, err := WrongAnswersToJSON(item.WrongAnswers)
		if err != nil {
			return "", err
		}
		_, err = tx.Exec(
			"INSERT INTO questions (id, deck_id, question_num, question, correct_answer, wrong_answers, difficulty, explanation, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			fmt.Sprintf("%s-%d", deckID, i+1), deckID, i+1,
			item.Question, item.CorrectAnswer, wrongJSON, item.Difficulty, item.Explanation, item.CreatedAt,
		)
		if err != nil {
			return "", fmt.Errorf("failed to store question %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}
	return deckID, nil
}

// GetDeck retrieves a deck by ID
func (db *DB) GetDeck(id string) (*Deck, error) {
	var deck Deck
	err := db.db.QueryRow(
		"SELECT id, name, source_file, question_count, created_at FROM decks WHERE id = ?",
		id,
	).Scan(&deck.ID, &deck.Name, &deck.SourceFile, &deck.QuestionCount, &deck.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deck not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	return &deck, nil
}

// GetDecks retrieves all decks, optionally limited by count
func (db *DB) GetDecks(limit int) ([]Deck, error) {
	query := "SELECT id, name, source_file, question_count, created_at FROM decks ORDER BY created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get decks: %w", err)
	}
	defer rows.Close()

	var decks []Deck
	for rows.Next() {
		var deck Deck
		err := rows.Scan(&deck.ID, &deck.Name, &deck.SourceFile, &deck.QuestionCount, &deck.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating decks: %w", err)
	}

	return decks, nil
}

// GetDeckQuestions loads all questions of a deck back as canonical items,
// ordered as they were imported.
func (db *DB) GetDeckQuestions(deckID string) ([]QuizItem, error) {
	deck, err := db.GetDeck(deckID)
	if err != nil {
		return nil, err
	}

	rows, err := db.db.Query(
		"SELECT id, question, correct_answer, wrong_answers, difficulty, explanation, created_at FROM questions WHERE deck_id = ? ORDER BY question_num",
		deckID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	var items []QuizItem
	for rows.Next() {
		var item QuizItem
		var wrongJSON string
		err := rows.Scan(&item.ID, &item.Question, &item.CorrectAnswer, &wrongJSON, &item.Difficulty, &item.Explanation, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		item.Deck = deck.Name
		item.WrongAnswers, err = JSONToWrongAnswers(wrongJSON)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return items, nil
}

// DeleteDeck removes a deck and its questions.
func (db *DB) DeleteDeck(deckID string) error {
	if _, err := db.db.Exec("DELETE FROM questions WHERE deck_id = ?", deckID); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}
	if _, err := db.db.Exec("DELETE FROM decks WHERE id = ?", deckID); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}

// WrongAnswersToJSON converts a wrong-answer slice to its stored JSON form
func WrongAnswersToJSON(answers []string) (string, error) {
	data, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("failed to marshal wrong answers: %w", err)
	}
	return string(data), nil
}

// JSONToWrongAnswers converts the stored JSON form back to a slice
func JSONToWrongAnswers(answersJSON string) ([]string, error) {
	var answers []string
	err := json.Unmarshal([]byte(answersJSON), &answers)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal wrong answers: %w", err)
	}
	return answers, nil
}

func generateDeckID() string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 12)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
