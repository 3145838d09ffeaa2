// Package csvfile implements the word store over a CSV file with the
// sheet export schema: Word, Polished Definition, Part of Speech,
// Synonyms, Antonyms, Repetition.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
	"github.com/oliverwhitby/elevenplus-bot/internal/repository"
)

var header = []string{"Word", "Polished Definition", "Part of Speech", "Synonyms", "Antonyms", "Repetition"}

// Repository provides access to the word list in a CSV file.
type Repository struct {
	path string
}

// NewRepository creates a Repository backed by the CSV file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load reads the full word pool from the file.
func (r *Repository) Load(_ context.Context) ([]*entities.WordEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", repository.ErrSourceUnavailable, r.path, err)
	}
	defer f.Close()

	words, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", repository.ErrSourceUnavailable, r.path, err)
	}

	return words, nil
}

// BulkSave rewrites the whole file with the given words, replacing it
// atomically via a temp file and rename.
func (r *Repository) BulkSave(_ context.Context, words []*entities.WordEntry) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".words-*.csv")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", repository.ErrSaveFailed, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, words); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", repository.ErrSaveFailed, r.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", repository.ErrSaveFailed, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", repository.ErrSaveFailed, r.path, err)
	}

	return nil
}

// Decode parses word entries from CSV data. The header row is required;
// a missing Repetition column or an empty value defaults to 0.
func Decode(r io.Reader) ([]*entities.WordEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(head))
	for i, name := range head {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range header[:5] {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var words []*entities.WordEntry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		repetition := 0
		if raw := field("Repetition"); raw != "" {
			repetition, err = strconv.Atoi(raw)
			if err != nil || repetition < 0 {
				return nil, fmt.Errorf("line %d: invalid repetition %q", line, raw)
			}
		}

		words = append(words, &entities.WordEntry{
			Word:         field("Word"),
			Definition:   field("Polished Definition"),
			PartOfSpeech: field("Part of Speech"),
			Synonyms:     splitList(field("Synonyms")),
			Antonyms:     splitList(field("Antonyms")),
			Repetition:   repetition,
		})
	}

	return words, nil
}

// Encode writes word entries as CSV data with the full header row.
func Encode(w io.Writer, words []*entities.WordEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, word := range words {
		record := []string{
			word.Word,
			word.Definition,
			word.PartOfSpeech,
			strings.Join(word.Synonyms, ", "),
			strings.Join(word.Antonyms, ", "),
			strconv.Itoa(word.Repetition),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write %q: %w", word.Word, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// splitList parses a comma-separated cell into its values.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
