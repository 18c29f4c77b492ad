package main

import (
	"encoding/gob"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"quizextractor"

	"github.com/gorilla/sessions"
)

type Server struct {
	db        *quizextractor.DB
	store     *sessions.CookieStore
	templates map[string]*template.Template
}

func init() {
	gob.Register(PlaySession{})
}

func main() {
	quizextractor.SetVerbose(true)

	dbPath := os.Getenv("DECK_DB")
	if dbPath == "" {
		dbPath = "./decks.db"
	}

	db, err := quizextractor.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open deck library: %v", err)
	}
	defer db.CloseDB()

	if err := db.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "quiz-extractor-dev-secret"
	}
	store := sessions.NewCookieStore([]byte(secret))

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"pct": func(a, b int) int {
			if b == 0 {
				return 0
			}
			return a * 100 / b
		},
		"printf": fmt.Sprintf,
	}

	templates := make(map[string]*template.Template)
	templateFiles := []struct {
		name string
		file string
	}{
		{"home", "templates/home.html"},
		{"upload", "templates/upload.html"},
		{"deck", "templates/deck.html"},
		{"question", "templates/question.html"},
		{"results", "templates/results.html"},
	}
	for _, tmpl := range templateFiles {
		templates[tmpl.name] = template.Must(template.New("base.html").Funcs(funcMap).ParseFiles("templates/base.html", tmpl.file))
	}

	server := &Server{
		db:        db,
		store:     store,
		templates: templates,
	}

	http.HandleFunc("/", server.handleHome)
	http.HandleFunc("/upload", server.handleUpload)
	http.HandleFunc("/deck/", server.handleDeck)
	http.HandleFunc("/play/", server.handlePlay)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8180"
	}

	log.Printf("Quiz extractor webserver listening on :%s (library: %s)", port, dbPath)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := s.templates[name]
	if !ok {
		http.Error(w, "template not found: "+name, http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Template error (%s): %v", name, err)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	decks, err := s.db.GetDecks(50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "home", map[string]interface{}{
		"Decks": decks,
	})
}

// handleUpload accepts an MHTML export, runs the extraction pipeline and
// imports the result as a new deck.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, "upload", nil)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	deckName := strings.TrimSpace(r.FormValue("deck"))
	if deckName == "" {
		http.Error(w, "deck name is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("export")
	if err != nil {
		http.Error(w, "export file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	extractor := quizextractor.NewExtractor(deckName)
	result, err := extractor.Extract(string(content))
	if err != nil {
		// Not a supported export is a user problem, not a server one.
		http.Error(w, "extraction failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	deckID, err := s.db.ImportDataset(deckName, filepath.Base(header.Filename), result.Dataset)
	if err != nil {
		http.Error(w, "failed to store deck: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("Imported deck %s (%q): %d questions, %d warnings",
		deckID, deckName, len(result.Dataset.Items), len(result.Warnings))
	http.Redirect(w, r, "/deck/"+deckID, http.StatusSeeOther)
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	deckID := strings.TrimPrefix(r.URL.Path, "/deck/")
	if deckID == "" || strings.Contains(deckID, "/") {
		http.NotFound(w, r)
		return
	}

	deck, err := s.db.GetDeck(deckID)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	items, err := s.db.GetDeckQuestions(deckID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	stats := quizextractor.TallyDifficulty(items)
	s.render(w, "deck", map[string]interface{}{
		"Deck":  deck,
		"Items": items,
		"Stats": stats,
	})
}
