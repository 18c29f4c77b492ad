package main

import (
	"hash/fnv"
	"net/http"
	"strings"

	"quizextractor"
)

const sessionName = "quiz-play"

// PlaySession is the per-browser play state stored in the cookie session.
// Option order is not stored: it is recomputed deterministically per
// question, so the cookie stays small.
type PlaySession struct {
	DeckID   string `json:"deck_id"`
	CurrentQ int    `json:"current_q"`
	Score    int    `json:"score"`
}

// handlePlay routes /play/{deckID}, /play/{deckID}/answer and
// /play/{deckID}/results.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/play/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	deckID := parts[0]

	action := ""
	if len(parts) > 1 {
		action = parts[1]
	}

	items, err := s.db.GetDeckQuestions(deckID)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if len(items) == 0 {
		http.Error(w, "deck has no questions", http.StatusNotFound)
		return
	}

	session, _ := s.store.Get(r, sessionName)

	switch action {
	case "":
		// Start (or restart) a run.
		session.Values["game"] = PlaySession{DeckID: deckID}
		if err := session.Save(r, w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.renderQuestion(w, deckID, items, PlaySession{DeckID: deckID})

	case "answer":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		game, ok := session.Values["game"].(PlaySession)
		if !ok || game.DeckID != deckID || game.CurrentQ >= len(items) {
			http.Redirect(w, r, "/play/"+deckID, http.StatusSeeOther)
			return
		}

		item := items[game.CurrentQ]
		picked := r.FormValue("answer")
		if picked == item.CorrectAnswer {
			game.Score++
		}
		game.CurrentQ++

		session.Values["game"] = game
		if err := session.Save(r, w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if game.CurrentQ >= len(items) {
			http.Redirect(w, r, "/play/"+deckID+"/results", http.StatusSeeOther)
			return
		}
		s.renderQuestion(w, deckID, items, game)

	case "results":
		game, ok := session.Values["game"].(PlaySession)
		if !ok || game.DeckID != deckID {
			http.Redirect(w, r, "/play/"+deckID, http.StatusSeeOther)
			return
		}
		deck, err := s.db.GetDeck(deckID)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		s.render(w, "results", map[string]interface{}{
			"Deck":  deck,
			"Score": game.Score,
			"Total": len(items),
		})

	default:
		http.NotFound(w, r)
	}
}

func (s *Server) renderQuestion(w http.ResponseWriter, deckID string, items []quizextractor.QuizItem, game PlaySession) {
	item := items[game.CurrentQ]
	s.render(w, "question", map[string]interface{}{
		"DeckID":  deckID,
		"Number":  game.CurrentQ + 1,
		"Total":   len(items),
		"Score":   game.Score,
		"Item":    item,
		"Options": shuffledOptions(item),
	})
}

// shuffledOptions mixes the correct answer among the wrong ones in an order
// derived from the question ID, so a re-render of the same question always
// shows the same layout.
func shuffledOptions(item quizextractor.QuizItem) []string {
	options := append([]string{item.CorrectAnswer}, item.WrongAnswers...)

	h := fnv.New32a()
	h.Write([]byte(item.ID))
	seed := h.Sum32()

	// Fisher-Yates with a tiny xorshift generator seeded per question.
	state := seed | 1
	for i := len(options) - 1; i > 0; i-- {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		j := int(state % uint32(i+1))
		options[i], options[j] = options[j], options[i]
	}
	return options
}
