package service

import (
	"sort"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
)

// RepetitionBucket is one row of the repetition histogram: how many
// words currently sit at a given repetition count.
type RepetitionBucket struct {
	Repetition int
	Words      int
}

// AnswerDetail joins an answer record with the full word entry so the
// results screen can show definition, part of speech and relations.
type AnswerDetail struct {
	Record entities.AnswerRecord
	Entry  *entities.WordEntry
}

// Summary is the aggregated outcome of a completed session.
type Summary struct {
	Score          int
	TotalQuestions int
	Histogram      []RepetitionBucket // ascending by repetition count
	Correct        []AnswerDetail
	Incorrect      []AnswerDetail
	TotalWords     int
	MasteredWords  int // words answered correctly at least once, ever
	Saved          bool
}

// Summarize builds the progress report for a pool and an answer
// history. Pure function of its inputs.
func Summarize(pool []*entities.WordEntry, history []entities.AnswerRecord) Summary {
	byWord := make(map[string]*entities.WordEntry, len(pool))
	counts := make(map[int]int)
	mastered := 0

	for _, w := range pool {
		byWord[w.Word] = w
		counts[w.Repetition]++
		if w.Repetition > 0 {
			mastered++
		}
	}

	histogram := make([]RepetitionBucket, 0, len(counts))
	for rep, n := range counts {
		histogram = append(histogram, RepetitionBucket{Repetition: rep, Words: n})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].Repetition < histogram[j].Repetition
	})

	summary := Summary{
		TotalQuestions: len(history),
		Histogram:      histogram,
		TotalWords:     len(pool),
		MasteredWords:  mastered,
	}

	for _, record := range history {
		detail := AnswerDetail{Record: record, Entry: byWord[record.Word]}
		if record.IsCorrect {
			summary.Score++
			summary.Correct = append(summary.Correct, detail)
		} else {
			summary.Incorrect = append(summary.Incorrect, detail)
		}
	}

	return summary
}
