package service

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

// maxDistractors is the number of wrong options shown alongside the
// correct answer when the pool is rich enough.
const maxDistractors = 4

// OptionSynthesizer produces the shuffled answer options for a question.
type OptionSynthesizer struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// NewOptionSynthesizer creates a new OptionSynthesizer.
func NewOptionSynthesizer(logger *zap.Logger) *OptionSynthesizer {
	return &OptionSynthesizer{
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Synthesize builds the option set for a question: up to four distinct
// distractors drawn from words sharing the question's part of speech,
// plus the correct answer, shuffled. It never fails; under pool
// scarcity it returns fewer options and logs a warning.
func (s *OptionSynthesizer) Synthesize(q entities.Question, pool []*entities.WordEntry) []string {
	candidates := s.distractorPool(q, pool)

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	count := maxDistractors
	if len(candidates) < count {
		count = len(candidates)
		s.logger.Warn("not enough distractors for question",
			zap.String("word", q.Word),
			zap.String("type", string(q.Type)),
			zap.String("part_of_speech", q.PartOfSpeech),
			zap.Int("distractors", count),
		)
	}

	options := make([]string, 0, count+1)
	options = append(options, candidates[:count]...)
	options = append(options, q.CorrectAnswer)

	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// distractorPool collects the distinct wrong-answer candidates for a
// question. Definition questions draw other definitions, synonym and
// antonym questions draw other words, always within the same part of
// speech and never equal to the correct answer.
func (s *OptionSynthesizer) distractorPool(q entities.Question, pool []*entities.WordEntry) []string {
	seen := make(map[string]struct{}, len(pool))
	candidates := make([]string, 0, len(pool))

	for _, w := range pool {
		if w.PartOfSpeech != q.PartOfSpeech {
			continue
		}

		var value string
		switch q.Type {
		case entities.QuestionTypeDefinition:
			value = w.Definition
		case entities.QuestionTypeSynonym, entities.QuestionTypeAntonym:
			if w.Word == q.Word {
				continue
			}
			value = w.Word
		default:
			continue
		}

		if value == "" || value == q.CorrectAnswer {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	return candidates
}
