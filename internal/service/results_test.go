package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

func TestSummarize_Histogram(t *testing.T) {
	pool := testPool(5)
	pool[2].Repetition = 1
	pool[3].Repetition = 2
	pool[4].Repetition = 2

	summary := Summarize(pool, nil)

	assert.Equal(t, []RepetitionBucket{
		{Repetition: 0, Words: 2},
		{Repetition: 1, Words: 1},
		{Repetition: 2, Words: 2},
	}, summary.Histogram)
	assert.Equal(t, 5, summary.TotalWords)
	assert.Equal(t, 3, summary.MasteredWords)
}

func TestSummarize_PartitionsHistory(t *testing.T) {
	pool := testPool(3)
	now := time.Now()

	history := []entities.AnswerRecord{
		{Word: pool[0].Word, QuestionType: entities.QuestionTypeDefinition, UserChoice: pool[0].Definition, CorrectAnswer: pool[0].Definition, IsCorrect: true, AnsweredAt: now},
		{Word: pool[1].Word, QuestionType: entities.QuestionTypeSynonym, UserChoice: "wrong", CorrectAnswer: pool[1].Synonyms[0], IsCorrect: false, AnsweredAt: now},
		{Word: pool[2].Word, QuestionType: entities.QuestionTypeAntonym, UserChoice: pool[2].Antonyms[0], CorrectAnswer: pool[2].Antonyms[0], IsCorrect: true, AnsweredAt: now},
	}

	summary := Summarize(pool, history)

	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 3, summary.TotalQuestions)

	require.Len(t, summary.Correct, 2)
	require.Len(t, summary.Incorrect, 1)

	// Details are joined against the pool.
	assert.Same(t, pool[1], summary.Incorrect[0].Entry)
	assert.Equal(t, "wrong", summary.Incorrect[0].Record.UserChoice)
	assert.Same(t, pool[0], summary.Correct[0].Entry)
}

func TestSummarize_EmptyPool(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.Zero(t, summary.TotalWords)
	assert.Zero(t, summary.MasteredWords)
	assert.Empty(t, summary.Histogram)
}
