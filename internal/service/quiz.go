package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// QuizService orchestrates quiz sessions over the word store: it loads
// the pool at session start, wires the engine together and issues the
// single bulk write of repetition counts when a session completes.
type QuizService struct {
	wordRepo  WordRepository
	logger    *zap.Logger
	generator *QuestionGenerator
	synth     *OptionSynthesizer
	counts    TypeCounts
}

// NewQuizService creates a new QuizService.
func NewQuizService(wordRepo WordRepository, logger *zap.Logger) *QuizService {
	return &QuizService{
		wordRepo:  wordRepo,
		logger:    logger,
		generator: NewQuestionGenerator(),
		synth:     NewOptionSynthesizer(logger),
		counts:    DefaultTypeCounts,
	}
}

// StartSession loads a fresh word pool and starts a new session over it.
func (s *QuizService) StartSession(ctx context.Context) (*Session, error) {
	pool, err := s.wordRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word pool: %w", err)
	}

	session := NewSession(pool, s.generator, s.synth, s.counts)
	if err := session.Start(); err != nil {
		return nil, err
	}

	return session, nil
}

// Finish summarizes a completed session and flushes the updated
// repetition counts to the store in one bulk write. A failed write
// degrades to local-only results: the summary is still returned, with
// Saved left false, and the failure is logged for the caller to surface
// as a warning.
func (s *QuizService) Finish(ctx context.Context, session *Session) Summary {
	summary := Summarize(session.Pool(), session.History())

	if !session.IsComplete() || session.saved {
		summary.Saved = session.saved
		return summary
	}

	if err := s.wordRepo.BulkSave(ctx, session.Pool()); err != nil {
		s.logger.Warn("bulk save of repetition counts failed, results are local only",
			zap.Error(err),
		)
		return summary
	}

	session.saved = true
	summary.Saved = true
	return summary
}

// ProgressReport loads the pool and returns the standing repetition
// histogram without any session context.
func (s *QuizService) ProgressReport(ctx context.Context) (Summary, error) {
	pool, err := s.wordRepo.Load(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load word pool: %w", err)
	}
	return Summarize(pool, nil), nil
}
