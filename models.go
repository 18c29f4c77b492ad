package quizextractor

// QuizItem represents a single extracted multiple-choice question in the
// canonical QuizWhiz schema
type QuizItem struct {
	ID            string   `json:"id"`
	Deck          string   `json:"deck"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	WrongAnswers  []string `json:"wrongAnswers"`
	Difficulty    string   `json:"difficulty"`
	CreatedAt     string   `json:"createdAt"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Difficulty labels assigned by the classifier
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Dataset is the persisted quiz artifact: an ordered list of items under the
// quizwhiz_quizzes key. ExportDate and ExportVersion are only written when
// the producing operation sets them (the transformer does, extraction does not).
type Dataset struct {
	Items         []QuizItem `json:"quizwhiz_quizzes"`
	ExportDate    string     `json:"exportDate,omitempty"`
	ExportVersion string     `json:"exportVersion,omitempty"`
}

// DifficultyStats counts items per difficulty bucket
type DifficultyStats struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Add records one item with the given difficulty label
func (ds *DifficultyStats) Add(difficulty string) {
	switch difficulty {
	case DifficultyEasy:
		ds.Easy++
	case DifficultyMedium:
		ds.Medium++
	case DifficultyHard:
		ds.Hard++
	}
}

// Total returns the number of counted items
func (ds *DifficultyStats) Total() int {
	return ds.Easy + ds.Medium + ds.Hard
}

// TallyDifficulty computes bucket counts over a set of items
func TallyDifficulty(items []QuizItem) DifficultyStats {
	var stats DifficultyStats
	for _, item := range items {
		stats.Add(item.Difficulty)
	}
	return stats
}

// Warning represents a non-fatal problem encountered while processing one
// question block. Warnings accumulate on the extraction result and never
// stop the run.
type Warning struct {
	Block   int    `json:"block"` // 1-based block index in source order
	Message string `json:"message"`
}

// ExtractionResult holds the outcome of one extraction run
type ExtractionResult struct {
	Dataset           *Dataset        `json:"dataset"`
	BlockCount        int             `json:"block_count"`
	SkippedBlocks     int             `json:"skipped_blocks"`
	DuplicatesRemoved int             `json:"duplicates_removed"`
	Stats             DifficultyStats `json:"stats"`
	Warnings          []Warning       `json:"warnings,omitempty"`
}
