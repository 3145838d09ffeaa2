package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

func testSynthesizer(seed int64) *OptionSynthesizer {
	return &OptionSynthesizer{
		logger: zap.NewNop(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func TestSynthesize_DefinitionQuestion(t *testing.T) {
	pool := testPool(8)
	q := entities.Question{
		Word:          pool[0].Word,
		Type:          entities.QuestionTypeDefinition,
		CorrectAnswer: pool[0].Definition,
		PartOfSpeech:  pool[0].PartOfSpeech,
	}

	options := testSynthesizer(1).Synthesize(q, pool)

	// Four distractors plus the correct answer.
	require.Len(t, options, 5)

	seen := map[string]int{}
	for _, opt := range options {
		seen[opt]++
	}
	assert.Len(t, seen, 5, "options must be distinct")
	assert.Equal(t, 1, seen[q.CorrectAnswer], "correct answer present exactly once")
}

func TestSynthesize_SynonymQuestionExcludesOwnWord(t *testing.T) {
	pool := testPool(8)
	q := entities.Question{
		Word:          pool[0].Word,
		Type:          entities.QuestionTypeSynonym,
		CorrectAnswer: pool[0].Synonyms[0],
		PartOfSpeech:  pool[0].PartOfSpeech,
	}

	options := testSynthesizer(2).Synthesize(q, pool)

	require.Len(t, options, 5)
	assert.NotContains(t, options, q.Word, "the quizzed word is never an option")
	assert.Contains(t, options, q.CorrectAnswer)
}

func TestSynthesize_ScarcePoolDegrades(t *testing.T) {
	pool := testPool(2)
	q := entities.Question{
		Word:          pool[0].Word,
		Type:          entities.QuestionTypeDefinition,
		CorrectAnswer: pool[0].Definition,
		PartOfSpeech:  pool[0].PartOfSpeech,
	}

	options := testSynthesizer(3).Synthesize(q, pool)

	// One available distractor plus the correct answer.
	require.Len(t, options, 2)
	assert.Contains(t, options, q.CorrectAnswer)
}

func TestSynthesize_FiltersByPartOfSpeech(t *testing.T) {
	adjectives := testPool(3)
	verb := testWord("hinder", "verb", 0)
	pool := append(adjectives, verb)

	q := entities.Question{
		Word:          adjectives[0].Word,
		Type:          entities.QuestionTypeSynonym,
		CorrectAnswer: adjectives[0].Synonyms[0],
		PartOfSpeech:  "adjective",
	}

	options := testSynthesizer(4).Synthesize(q, pool)

	assert.NotContains(t, options, "hinder", "distractors share the question's part of speech")
	// Two same-POS distractors plus the correct answer.
	assert.Len(t, options, 3)
}

func TestSynthesize_NeverFailsWithLoneWord(t *testing.T) {
	pool := testPool(1)
	q := entities.Question{
		Word:          pool[0].Word,
		Type:          entities.QuestionTypeDefinition,
		CorrectAnswer: pool[0].Definition,
		PartOfSpeech:  pool[0].PartOfSpeech,
	}

	options := testSynthesizer(5).Synthesize(q, pool)

	require.Equal(t, []string{q.CorrectAnswer}, options)
}
