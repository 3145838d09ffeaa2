// Package entities contains domain entities used across the application.
package entities

// WordEntry represents a single vocabulary word from the word list.
// It includes the definition, grammatical category, related words and
// the repetition counter used for question selection.
type WordEntry struct {
	Word         string   // the word itself, unique within the pool
	Definition   string   // polished definition shown as the correct answer for definition questions
	PartOfSpeech string   // grammatical category, used to keep distractors plausible
	Synonyms     []string // synonyms of the word, may be empty for some entries
	Antonyms     []string // antonyms of the word, may be empty for some entries
	Repetition   int      // times the word has been answered correctly across all sessions
}

// Supports reports whether the entry carries the data required to ask
// a question of the given type about it.
func (w *WordEntry) Supports(t QuestionType) bool {
	switch t {
	case QuestionTypeDefinition:
		return w.Definition != ""
	case QuestionTypeSynonym:
		return len(w.Synonyms) > 0
	case QuestionTypeAntonym:
		return len(w.Antonyms) > 0
	default:
		return false
	}
}

// Relations returns the list the given question type draws its correct
// answer from. Definition questions have a single-element list.
func (w *WordEntry) Relations(t QuestionType) []string {
	switch t {
	case QuestionTypeDefinition:
		return []string{w.Definition}
	case QuestionTypeSynonym:
		return w.Synonyms
	case QuestionTypeAntonym:
		return w.Antonyms
	default:
		return nil
	}
}
