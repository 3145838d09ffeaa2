package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

// TypeCounts is the number of questions of each type in a quiz.
type TypeCounts struct {
	Definition int
	Synonym    int
	Antonym    int
}

// DefaultTypeCounts is the standard 20-question quiz mix.
var DefaultTypeCounts = TypeCounts{Definition: 10, Synonym: 7, Antonym: 3}

// Total returns the total number of questions.
func (c TypeCounts) Total() int {
	return c.Definition + c.Synonym + c.Antonym
}

// QuestionGenerator builds the ordered question sequence for a quiz.
// Words with the lowest repetition count are always asked first.
type QuestionGenerator struct {
	rng *rand.Rand
}

// NewQuestionGenerator creates a new QuestionGenerator.
func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate produces the full question sequence for one quiz.
//
// The type order is a random permutation of the counts multiset. For
// each type label the source word is picked uniformly from the words
// with the lowest repetition count that carry the required relation,
// skipping words already used in this quiz; when every such word has
// been used, a repeat within the quiz is allowed rather than failing.
func (g *QuestionGenerator) Generate(pool []*entities.WordEntry, counts TypeCounts) ([]entities.Question, error) {
	if len(pool) == 0 {
		return nil, ErrDataUnavailable
	}

	labels := g.shuffledLabels(counts)
	questions := make([]entities.Question, 0, len(labels))
	used := make(map[string]struct{}, len(labels))

	for _, qType := range labels {
		word, err := g.pickWord(pool, qType, used)
		if err != nil {
			return nil, err
		}
		used[word.Word] = struct{}{}

		questions = append(questions, entities.Question{
			Word:          word.Word,
			Type:          qType,
			CorrectAnswer: g.pickAnswer(word, qType),
			PartOfSpeech:  word.PartOfSpeech,
		})
	}

	return questions, nil
}

// shuffledLabels builds the type-label multiset and permutes it.
func (g *QuestionGenerator) shuffledLabels(counts TypeCounts) []entities.QuestionType {
	labels := make([]entities.QuestionType, 0, counts.Total())
	for i := 0; i < counts.Definition; i++ {
		labels = append(labels, entities.QuestionTypeDefinition)
	}
	for i := 0; i < counts.Synonym; i++ {
		labels = append(labels, entities.QuestionTypeSynonym)
	}
	for i := 0; i < counts.Antonym; i++ {
		labels = append(labels, entities.QuestionTypeAntonym)
	}

	g.rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	return labels
}

// pickWord selects the source word for one question. Only words that
// carry the relation required by qType are candidates, so option and
// answer synthesis cannot fail later.
func (g *QuestionGenerator) pickWord(
	pool []*entities.WordEntry,
	qType entities.QuestionType,
	used map[string]struct{},
) (*entities.WordEntry, error) {
	candidates := make([]*entities.WordEntry, 0, len(pool))
	for _, w := range pool {
		if w.Supports(qType) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no word supports %s questions", ErrMalformedEntry, qType)
	}

	minRep := candidates[0].Repetition
	for _, w := range candidates[1:] {
		if w.Repetition < minRep {
			minRep = w.Repetition
		}
	}

	eligible := make([]*entities.WordEntry, 0, len(candidates))
	for _, w := range candidates {
		if w.Repetition == minRep {
			eligible = append(eligible, w)
		}
	}

	available := make([]*entities.WordEntry, 0, len(eligible))
	for _, w := range eligible {
		if _, ok := used[w.Word]; !ok {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		// Every least-seen word already appeared in this quiz; allow a
		// repeat rather than failing generation.
		available = eligible
	}

	return available[g.rng.Intn(len(available))], nil
}

// pickAnswer derives the correct answer for a question about word.
func (g *QuestionGenerator) pickAnswer(word *entities.WordEntry, qType entities.QuestionType) string {
	relations := word.Relations(qType)
	return relations[g.rng.Intn(len(relations))]
}
