package entities

// QuestionType identifies what a question asks about a word.
type QuestionType string

const (
	QuestionTypeDefinition QuestionType = "definition"
	QuestionTypeSynonym    QuestionType = "synonym"
	QuestionTypeAntonym    QuestionType = "antonym"
)

// Question is a single quiz question. It is created once per quiz
// position at session start and is immutable afterwards; answer options
// are synthesized lazily by the session.
type Question struct {
	Word          string       // key of the word the question is about
	Type          QuestionType // what is being asked
	CorrectAnswer string       // the single correct option
	PartOfSpeech  string       // copied from the word for distractor filtering
}
