// Package repository defines errors shared by word store implementations.
package repository

import "errors"

var (
	// ErrSourceUnavailable means the word store could not be reached or
	// parsed. Callers degrade to a "not saved" mode instead of aborting.
	ErrSourceUnavailable = errors.New("word store unavailable")

	// ErrSaveFailed means writing repetition counts back to the store
	// failed. Non-fatal: session results remain visible.
	ErrSaveFailed = errors.New("saving repetition counts failed")
)
