package entities

import "time"

// AnswerRecord captures the outcome of one answered question.
// Records are appended to the session history and never mutated.
type AnswerRecord struct {
	Word          string       // word the question was about
	QuestionType  QuestionType // type of the question
	UserChoice    string       // option the user picked
	CorrectAnswer string       // option that was correct
	IsCorrect     bool         // whether the user picked the correct option
	AnsweredAt    time.Time    // timestamp when the answer was submitted
}

// NewAnswerRecord creates an answer record for a question and the
// user's choice, determining correctness by exact match.
func NewAnswerRecord(q Question, choice string, answeredAt time.Time) AnswerRecord {
	return AnswerRecord{
		Word:          q.Word,
		QuestionType:  q.Type,
		UserChoice:    choice,
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     choice == q.CorrectAnswer,
		AnsweredAt:    answeredAt,
	}
}
