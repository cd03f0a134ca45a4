// Package practiced implements the scoring collaborator protocol from a
// local word-list file, so the engine runs end-to-end without the academy
// server. It grades answers, advances stages, and tracks mastery the same
// way the real collaborator does, with a simple stage-dependent question
// builder in place of the server's authored question banks.
package practiced

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/abhisek/wordwave/internal/scoring"
)

// DefaultMaxFails is the failure ceiling handed to clients at bootstrap.
const DefaultMaxFails = 3

// initialQuestionCount is the size of the bootstrap question batch.
const initialQuestionCount = 8

// Server holds practice word lists and in-memory session state.
type Server struct {
	maxFails int
	rng      *rand.Rand

	mu       sync.Mutex
	lists    map[string]WordList
	sessions map[string]*serverSession
}

type serverSession struct {
	id          string
	accessToken string
	code        string
	completed   bool
	words       map[int64]*serverWord
	answered    int
	correct     int
}

type serverWord struct {
	masteryID   int64
	text        string
	translation string
	difficulty  float64
	stage       int
	failCount   int
	mastered    bool
}

// NewServer creates a Server for the given word lists.
// Seed fixes the distractor shuffle for tests; pass 0 for a random seed.
func NewServer(lists []WordList, seed int64) *Server {
	byCode := make(map[string]WordList, len(lists))
	for _, l := range lists {
		byCode[strings.ToUpper(l.Code)] = l
	}
	src := rand.NewSource(seed)
	if seed == 0 {
		src = rand.NewSource(rand.Int63())
	}
	return &Server{
		maxFails: DefaultMaxFails,
		rng:      rand.New(src),
		lists:    byCode,
		sessions: make(map[string]*serverSession),
	}
}

// Router returns the HTTP routes implementing the collaborator protocol.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/stage-test", func(r chi.Router) {
		r.Post("/start", s.handleStart)
		r.Post("/questions", s.handleQuestions)
		r.Post("/answer", s.handleAnswer)
		r.Post("/complete", s.handleComplete)
	})
	return r
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TestCode     string `json:"test_code"`
		AllowRestart bool   `json:"allow_restart"`
	}
	if err := decodeJSON(r, &req); err != nil || req.TestCode == "" {
		http.Error(w, "test_code required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[strings.ToUpper(req.TestCode)]
	if !ok {
		http.Error(w, "unknown test code", http.StatusNotFound)
		return
	}

	// The practice server keeps no completion record across sessions, so
	// allow_restart only gates re-entry into a live completed session.
	for _, sess := range s.sessions {
		if sess.code == list.Code && sess.completed && !req.AllowRestart {
			http.Error(w, "test already completed", http.StatusConflict)
			return
		}
	}

	sess := &serverSession{
		id:          uuid.New().String(),
		accessToken: uuid.New().String(),
		code:        list.Code,
		words:       make(map[int64]*serverWord, len(list.Entries)),
	}

	words := make([]scoring.Word, 0, len(list.Entries))
	for i, e := range list.Entries {
		masteryID := int64(i + 1)
		sess.words[masteryID] = &serverWord{
			masteryID:   masteryID,
			text:        e.Text,
			translation: e.Translation,
			difficulty:  e.Difficulty,
			stage:       1,
		}
		words = append(words, scoring.Word{
			WordMasteryID: masteryID,
			WordID:        masteryID,
			Text:          e.Text,
			Translation:   e.Translation,
			Difficulty:    e.Difficulty,
		})
	}
	s.sessions[sess.id] = sess

	// Seed the first wave's questions: one per word in list order, capped.
	n := initialQuestionCount
	if n > len(words) {
		n = len(words)
	}
	initial := make([]scoring.Question, 0, n)
	for i := 0; i < n; i++ {
		initial = append(initial, s.buildQuestion(sess, sess.words[int64(i+1)]))
	}

	writeJSON(w, scoring.StartResult{
		SessionID:        sess.id,
		AssignmentID:     1,
		Words:            words,
		InitialQuestions: initial,
		TotalWords:       len(words),
		MaxFails:         s.maxFails,
		AccessToken:      sess.accessToken,
	})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req scoring.FetchRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.authorized(r, req.SessionID)
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}

	batch := scoring.QuestionBatch{Questions: []scoring.Question{}}
	for i, id := range req.WordMasteryIDs {
		sw, ok := sess.words[id]
		if !ok || sw.mastered {
			continue
		}
		// The error-count hint biases modality: a struggling word gets the
		// easier choice format even at later stages.
		fails := sw.failCount
		if i < len(req.ErrorCounts) {
			fails = req.ErrorCounts[i]
		}
		batch.Questions = append(batch.Questions, s.buildQuestionBiased(sess, sw, fails))
	}

	writeJSON(w, batch)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		scoring.AnswerRequest
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.authorized(r, req.SessionID)
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}
	sw, ok := sess.words[req.WordMasteryID]
	if !ok {
		http.Error(w, "unknown word", http.StatusBadRequest)
		return
	}

	correct, almost := gradeAnswer(req.SelectedAnswer, sw.translation)

	sess.answered++
	if correct {
		sess.correct++
	}

	verdict := scoring.AnswerVerdict{
		IsCorrect:     correct,
		AlmostCorrect: almost,
		CorrectAnswer: sw.translation,
		NewStage:      sw.stage,
	}

	switch {
	case almost:
		// Near miss: no stage or fail movement.
	case correct:
		if sw.stage >= maxStage {
			sw.mastered = true
			verdict.WordMastered = true
		} else {
			sw.stage++
		}
		verdict.NewStage = sw.stage
	default:
		sw.failCount++
	}

	writeJSON(w, verdict)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		scoring.CompletionRequest
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.authorized(r, req.SessionID)
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}
	sess.completed = true

	var accuracy float64
	if sess.answered > 0 {
		accuracy = float64(sess.correct) / float64(sess.answered)
	}
	writeJSON(w, scoring.CompletionSummary{
		Accuracy:      accuracy,
		TotalAnswered: sess.answered,
		CorrectCount:  sess.correct,
	})
}

// authorized resolves a session and checks the bearer token issued at start.
func (s *Server) authorized(r *http.Request, sessionID string) (*serverSession, bool) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	auth := r.Header.Get("Authorization")
	if auth != "Bearer "+sess.accessToken {
		return nil, false
	}
	return sess, true
}

const maxStage = 5

// choiceCount is the option set size for choice questions.
const choiceCount = 4

func (s *Server) buildQuestion(sess *serverSession, sw *serverWord) scoring.Question {
	return s.buildQuestionBiased(sess, sw, sw.failCount)
}

// buildQuestionBiased builds a single-use question for a word at its current
// stage. Early stages use recognition (choice); from stage 3 the student
// must produce the translation, unless repeated failures earn the easier
// format back.
func (s *Server) buildQuestionBiased(sess *serverSession, sw *serverWord, fails int) scoring.Question {
	typed := sw.stage >= 3 && fails < 2

	q := scoring.Question{
		WordMasteryID: sw.masteryID,
		Stage:         sw.stage,
		Prompt:        fmt.Sprintf("Translate: %s", sw.text),
		CorrectAnswer: sw.translation,
	}
	if typed {
		q.QuestionType = "typed"
		q.TimerSeconds = 30
		return q
	}

	q.QuestionType = "choice"
	q.TimerSeconds = 15
	q.Choices = s.buildChoices(sess, sw)
	return q
}

// buildChoices assembles the option set: the correct translation plus
// distractors drawn from other words in the same list.
func (s *Server) buildChoices(sess *serverSession, sw *serverWord) []string {
	choices := []string{sw.translation}
	var pool []string
	for _, other := range sess.words {
		if other.masteryID != sw.masteryID && other.translation != sw.translation {
			pool = append(pool, other.translation)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, c := range pool {
		if len(choices) >= choiceCount {
			break
		}
		choices = append(choices, c)
	}
	s.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return choices
}
