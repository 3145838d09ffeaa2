package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

func testGenerator(seed int64) *QuestionGenerator {
	return &QuestionGenerator{rng: rand.New(rand.NewSource(seed))}
}

func testWord(word, pos string, repetition int) *entities.WordEntry {
	return &entities.WordEntry{
		Word:         word,
		Definition:   "definition of " + word,
		PartOfSpeech: pos,
		Synonyms:     []string{"syn1-" + word, "syn2-" + word},
		Antonyms:     []string{"ant-" + word},
		Repetition:   repetition,
	}
}

func testPool(size int) []*entities.WordEntry {
	pool := make([]*entities.WordEntry, 0, size)
	for i := 0; i < size; i++ {
		pool = append(pool, testWord(string(rune('a'+i)), "adjective", 0))
	}
	return pool
}

func TestGenerate_TypeMultiset(t *testing.T) {
	g := testGenerator(1)

	questions, err := g.Generate(testPool(25), DefaultTypeCounts)
	require.NoError(t, err)
	require.Len(t, questions, 20)

	counts := map[entities.QuestionType]int{}
	for _, q := range questions {
		counts[q.Type]++
	}

	assert.Equal(t, 10, counts[entities.QuestionTypeDefinition])
	assert.Equal(t, 7, counts[entities.QuestionTypeSynonym])
	assert.Equal(t, 3, counts[entities.QuestionTypeAntonym])
}

func TestGenerate_EmptyPool(t *testing.T) {
	g := testGenerator(1)

	_, err := g.Generate(nil, DefaultTypeCounts)
	require.ErrorIs(t, err, ErrDataUnavailable)
}

func TestGenerate_MinRepetitionPriority(t *testing.T) {
	leastSeen := testWord("least-seen", "adjective", 0)
	wellKnown := testWord("well-known", "adjective", 5)
	pool := []*entities.WordEntry{wellKnown, leastSeen}

	// Over many seeds the least-seen word must always win.
	for seed := int64(0); seed < 20; seed++ {
		g := testGenerator(seed)
		questions, err := g.Generate(pool, TypeCounts{Definition: 1})
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "least-seen", questions[0].Word, "seed %d", seed)
	}
}

func TestGenerate_SkipsWordsMissingRelation(t *testing.T) {
	noAntonyms := testWord("gossamer", "adjective", 0)
	noAntonyms.Antonyms = nil
	withAntonyms := testWord("bright", "adjective", 5)

	for seed := int64(0); seed < 20; seed++ {
		g := testGenerator(seed)
		questions, err := g.Generate(
			[]*entities.WordEntry{noAntonyms, withAntonyms},
			TypeCounts{Antonym: 1},
		)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "bright", questions[0].Word, "seed %d", seed)
	}
}

func TestGenerate_NoWordSupportsType(t *testing.T) {
	w := testWord("orphan", "noun", 0)
	w.Antonyms = nil

	g := testGenerator(1)
	_, err := g.Generate([]*entities.WordEntry{w}, TypeCounts{Antonym: 1})
	require.ErrorIs(t, err, ErrMalformedEntry)
}

func TestGenerate_FallbackAllowsRepeatWithinQuiz(t *testing.T) {
	g := testGenerator(1)

	questions, err := g.Generate(
		[]*entities.WordEntry{testWord("lonely", "adjective", 0)},
		TypeCounts{Definition: 2},
	)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "lonely", questions[0].Word)
	assert.Equal(t, "lonely", questions[1].Word)
}

func TestGenerate_CorrectAnswerFromRelations(t *testing.T) {
	g := testGenerator(7)

	questions, err := g.Generate(testPool(10), TypeCounts{Definition: 3, Synonym: 3, Antonym: 3})
	require.NoError(t, err)

	byWord := map[string]*entities.WordEntry{}
	for _, w := range testPool(10) {
		byWord[w.Word] = w
	}

	for _, q := range questions {
		entry := byWord[q.Word]
		require.NotNil(t, entry)
		assert.Contains(t, entry.Relations(q.Type), q.CorrectAnswer)
		assert.Equal(t, entry.PartOfSpeech, q.PartOfSpeech)
	}
}
