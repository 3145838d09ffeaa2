// Command import loads a CSV word list export into the postgres word
// store. Existing words keep their repetition counts; definitions and
// relations are refreshed from the file.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/oliverwhitby/elevenplus-bot/internal/infra/csvfile"
	"github.com/oliverwhitby/elevenplus-bot/internal/infra/postgres"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS words (
		word           TEXT PRIMARY KEY,
		definition     TEXT NOT NULL,
		part_of_speech TEXT NOT NULL,
		synonyms       TEXT[] NOT NULL DEFAULT '{}',
		antonyms       TEXT[] NOT NULL DEFAULT '{}',
		repetition     INT NOT NULL DEFAULT 0
	)
`

const upsertWord = `
	INSERT INTO words (word, definition, part_of_speech, synonyms, antonyms, repetition)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (word) DO UPDATE SET
		definition     = EXCLUDED.definition,
		part_of_speech = EXCLUDED.part_of_speech,
		synonyms       = EXCLUDED.synonyms,
		antonyms       = EXCLUDED.antonyms
`

func main() {
	csvPath := flag.String("csv", "assets/data/words.csv", "path to the CSV word list")
	flag.Parse()

	_ = godotenv.Load()

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		zl.Fatal("DATABASE_URL is not set")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		zl.Fatal("open csv", zap.String("path", *csvPath), zap.Error(err))
	}
	words, err := csvfile.Decode(f)
	f.Close()
	if err != nil {
		zl.Fatal("parse csv", zap.String("path", *csvPath), zap.Error(err))
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 4})
	if err != nil {
		zl.Fatal("connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, createTable); err != nil {
		zl.Fatal("create words table", zap.Error(err))
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		zl.Fatal("begin transaction", zap.Error(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, w := range words {
		_, err := tx.Exec(ctx, upsertWord,
			w.Word, w.Definition, w.PartOfSpeech, w.Synonyms, w.Antonyms, w.Repetition,
		)
		if err != nil {
			zl.Fatal("upsert word", zap.String("word", w.Word), zap.Error(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		zl.Fatal("commit", zap.Error(err))
	}

	zl.Info("import complete", zap.Int("words", len(words)))
}
