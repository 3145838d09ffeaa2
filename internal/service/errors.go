package service

import "errors"

var (
	// ErrDataUnavailable is returned when the word pool is empty and no
	// questions can be generated. Fatal to session start only.
	ErrDataUnavailable = errors.New("no words available for quiz")

	// ErrMalformedEntry is returned when a question type cannot be asked
	// because no word in the pool carries the required relation.
	ErrMalformedEntry = errors.New("word entry lacks relation for question type")

	// ErrInvalidChoice is returned when a submitted answer is not among
	// the current question's options.
	ErrInvalidChoice = errors.New("choice is not one of the current options")

	// ErrAlreadySubmitted is returned when a question is answered twice.
	ErrAlreadySubmitted = errors.New("question already answered")

	// ErrNotSubmitted is returned when advancing a question that has not
	// been answered yet.
	ErrNotSubmitted = errors.New("question not answered yet")

	// ErrSessionCompleted is returned for transitions on a finished session.
	ErrSessionCompleted = errors.New("quiz session already completed")
)
