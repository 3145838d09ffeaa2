package repository

import (
	"context"
	"fmt"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
	"github.com/oliverwhitby/elevenplus-bot/internal/infra/postgres"
	"github.com/oliverwhitby/elevenplus-bot/internal/repository"
)

// WordRepository provides access to the word list in the database.
type WordRepository struct {
	db postgres.DBTX
}

// NewWordRepository creates a new WordRepository with the provided database pool.
func NewWordRepository(db postgres.DBTX) *WordRepository {
	return &WordRepository{db: db}
}

// Load reads the full word pool.
func (r *WordRepository) Load(ctx context.Context) ([]*entities.WordEntry, error) {
	query := `
		SELECT word, definition, part_of_speech, synonyms, antonyms, repetition
		FROM words
		ORDER BY word
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query words: %v", repository.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var words []*entities.WordEntry
	for rows.Next() {
		var w entities.WordEntry
		err := rows.Scan(
			&w.Word,
			&w.Definition,
			&w.PartOfSpeech,
			&w.Synonyms,
			&w.Antonyms,
			&w.Repetition,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan word: %v", repository.ErrSourceUnavailable, err)
		}
		words = append(words, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read words: %v", repository.ErrSourceUnavailable, err)
	}

	return words, nil
}

// BulkSave overwrites the repetition counts of all given words in a
// single transaction.
func (r *WordRepository) BulkSave(ctx context.Context, words []*entities.WordEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", repository.ErrSaveFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `UPDATE words SET repetition = $1 WHERE word = $2`

	for _, w := range words {
		if _, err := tx.Exec(ctx, query, w.Repetition, w.Word); err != nil {
			return fmt.Errorf("%w: update %q: %v", repository.ErrSaveFailed, w.Word, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", repository.ErrSaveFailed, err)
	}

	return nil
}
