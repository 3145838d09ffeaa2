package service

import (
	"time"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

// SessionState is the lifecycle state of a quiz session.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
)

// Session is the quiz state machine for a single quiz-taker. It owns
// the question sequence, the current position, the score and the answer
// history, and mutates the word pool's repetition counters locally as
// the authoritative record; persistence happens once, at completion.
//
// A session is owned by exactly one chat and is not safe for concurrent
// use.
type Session struct {
	state     SessionState
	pool      []*entities.WordEntry
	byWord    map[string]*entities.WordEntry
	generator *QuestionGenerator
	synth     *OptionSynthesizer
	counts    TypeCounts

	questions []entities.Question
	current   int
	score     int
	submitted bool
	selected  string
	options   []string
	history   []entities.AnswerRecord

	startedAt   time.Time
	completedAt *time.Time
	saved       bool
}

// NewSession creates a session over the given word pool. The session
// starts in the NotStarted state; call Start to generate questions.
func NewSession(
	pool []*entities.WordEntry,
	generator *QuestionGenerator,
	synth *OptionSynthesizer,
	counts TypeCounts,
) *Session {
	byWord := make(map[string]*entities.WordEntry, len(pool))
	for _, w := range pool {
		byWord[w.Word] = w
	}

	return &Session{
		state:     StateNotStarted,
		pool:      pool,
		byWord:    byWord,
		generator: generator,
		synth:     synth,
		counts:    counts,
	}
}

// Start generates the question sequence and moves the session into
// progress. Fails with ErrDataUnavailable on an empty pool.
func (s *Session) Start() error {
	if s.state != StateNotStarted {
		return ErrSessionCompleted
	}

	questions, err := s.generator.Generate(s.pool, s.counts)
	if err != nil {
		return err
	}

	s.questions = questions
	s.current = 0
	s.score = 0
	s.history = make([]entities.AnswerRecord, 0, len(questions))
	s.state = StateInProgress
	s.startedAt = time.Now()

	return nil
}

// CurrentQuestion returns the question at the current position.
func (s *Session) CurrentQuestion() (entities.Question, error) {
	if s.state != StateInProgress {
		return entities.Question{}, ErrSessionCompleted
	}
	return s.questions[s.current], nil
}

// CurrentOptions returns the answer options for the current question.
// Options are synthesized once per question and cached, so repeated
// calls while a question is on screen never reshuffle.
func (s *Session) CurrentOptions() ([]string, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	if s.options == nil {
		s.options = s.synth.Synthesize(q, s.pool)
	}
	return s.options, nil
}

// Submit records the user's answer to the current question. The choice
// must be one of the current options; a question may be answered
// exactly once. On a correct answer the word's repetition counter is
// incremented immediately.
func (s *Session) Submit(choice string) (entities.AnswerRecord, error) {
	if s.state != StateInProgress {
		return entities.AnswerRecord{}, ErrSessionCompleted
	}
	if s.submitted {
		return entities.AnswerRecord{}, ErrAlreadySubmitted
	}

	options, err := s.CurrentOptions()
	if err != nil {
		return entities.AnswerRecord{}, err
	}

	valid := false
	for _, opt := range options {
		if opt == choice {
			valid = true
			break
		}
	}
	if !valid {
		return entities.AnswerRecord{}, ErrInvalidChoice
	}

	q := s.questions[s.current]
	record := entities.NewAnswerRecord(q, choice, time.Now())

	s.submitted = true
	s.selected = choice
	s.history = append(s.history, record)

	if record.IsCorrect {
		s.score++
		if entry, ok := s.byWord[q.Word]; ok {
			entry.Repetition++
		}
	}

	return record, nil
}

// Advance moves to the next question. Valid only after the current
// question has been answered. Reaching the end of the sequence
// completes the session.
func (s *Session) Advance() error {
	if s.state != StateInProgress {
		return ErrSessionCompleted
	}
	if !s.submitted {
		return ErrNotSubmitted
	}

	s.current++
	s.submitted = false
	s.selected = ""
	s.options = nil

	if s.current == len(s.questions) {
		s.state = StateCompleted
		now := time.Now()
		s.completedAt = &now
	}

	return nil
}

// Restart discards all session data and returns to the NotStarted
// state. Repetition counts already flushed to storage are not rolled
// back.
func (s *Session) Restart() {
	s.state = StateNotStarted
	s.questions = nil
	s.current = 0
	s.score = 0
	s.submitted = false
	s.selected = ""
	s.options = nil
	s.history = nil
	s.completedAt = nil
	s.saved = false
}

// State returns the session's lifecycle state.
func (s *Session) State() SessionState { return s.state }

// IsComplete reports whether all questions have been answered.
func (s *Session) IsComplete() bool { return s.state == StateCompleted }

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int { return s.score }

// QuestionNumber returns the 1-based number of the current question.
func (s *Session) QuestionNumber() int { return s.current + 1 }

// TotalQuestions returns the length of the question sequence.
func (s *Session) TotalQuestions() int { return len(s.questions) }

// Submitted reports whether the current question has been answered.
func (s *Session) Submitted() bool { return s.submitted }

// Selected returns the option picked for the current question, if any.
func (s *Session) Selected() string { return s.selected }

// History returns the answer records accumulated so far.
func (s *Session) History() []entities.AnswerRecord { return s.history }

// Pool returns the session's word pool with its locally updated
// repetition counters.
func (s *Session) Pool() []*entities.WordEntry { return s.pool }
