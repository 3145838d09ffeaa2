package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
	"github.com/oliverwhitby/elevenplus-bot/internal/repository"
)

const sampleCSV = `Word,Polished Definition,Part of Speech,Synonyms,Antonyms,Repetition
brief,lasting only a short time,adjective,"short, concise","long, lengthy",2
hinder,to make progress difficult,verb,"impede, hamper","help, assist",
candid,truthful and straightforward,adjective,"frank, honest","evasive, guarded",0
`

func writeWordsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	repo := NewRepository(writeWordsFile(t, sampleCSV))

	words, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 3)

	brief := words[0]
	assert.Equal(t, "brief", brief.Word)
	assert.Equal(t, "lasting only a short time", brief.Definition)
	assert.Equal(t, "adjective", brief.PartOfSpeech)
	assert.Equal(t, []string{"short", "concise"}, brief.Synonyms)
	assert.Equal(t, []string{"long", "lengthy"}, brief.Antonyms)
	assert.Equal(t, 2, brief.Repetition)

	// Empty repetition cell defaults to 0.
	assert.Equal(t, 0, words[1].Repetition)
}

func TestLoad_MissingRepetitionColumn(t *testing.T) {
	csv := "Word,Polished Definition,Part of Speech,Synonyms,Antonyms\n" +
		"brief,lasting only a short time,adjective,short,long\n"
	repo := NewRepository(writeWordsFile(t, csv))

	words, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, 0, words[0].Repetition)
}

func TestLoad_MissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, repository.ErrSourceUnavailable)
}

func TestDecode_MissingColumn(t *testing.T) {
	_, err := Decode(strings.NewReader("Word,Synonyms\nbrief,short\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Polished Definition")
}

func TestDecode_InvalidRepetition(t *testing.T) {
	csv := sampleCSV + "terse,using few words,adjective,curt,verbose,minus-one\n"
	_, err := Decode(strings.NewReader(csv))
	require.Error(t, err)
}

func TestBulkSave_RoundTrip(t *testing.T) {
	path := writeWordsFile(t, sampleCSV)
	repo := NewRepository(path)

	words, err := repo.Load(context.Background())
	require.NoError(t, err)

	words[0].Repetition = 3
	words[1].Repetition = 1

	require.NoError(t, repo.BulkSave(context.Background(), words))

	reloaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded, 3)
	assert.Equal(t, 3, reloaded[0].Repetition)
	assert.Equal(t, 1, reloaded[1].Repetition)
	assert.Equal(t, words[0].Synonyms, reloaded[0].Synonyms)

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestBulkSave_QuotedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	repo := NewRepository(path)

	words := []*entities.WordEntry{
		{
			Word:         "diligent",
			Definition:   "showing steady, careful effort",
			PartOfSpeech: "adjective",
			Synonyms:     []string{"industrious"},
			Antonyms:     []string{"lazy"},
			Repetition:   1,
		},
	}

	require.NoError(t, repo.BulkSave(context.Background(), words))

	reloaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "showing steady, careful effort", reloaded[0].Definition)
}
