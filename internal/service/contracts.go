package service

import (
	"context"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

// WordRepository provides access to the backing word store.
type WordRepository interface {
	// Load reads the full word pool. Implementations return
	// repository.ErrSourceUnavailable when the store cannot be
	// reached or parsed.
	Load(ctx context.Context) ([]*entities.WordEntry, error)

	// BulkSave overwrites all repetition values in one operation.
	// Implementations return repository.ErrSaveFailed on I/O errors;
	// the caller treats that as non-fatal.
	BulkSave(ctx context.Context, words []*entities.WordEntry) error
}
