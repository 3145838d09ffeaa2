// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oliverwhitby/elevenplus-bot/internal/domain/entities"
	"github.com/oliverwhitby/elevenplus-bot/internal/service"
)

const (
	msgWelcome = "<b>11+ Vocabulary Quiz</b>\n\n" +
		"Twenty multiple-choice questions: definitions, synonyms and antonyms.\n" +
		"Words you have seen least come up first.\n\n" +
		"Press the button below to start!"
	msgHelp = "Commands:\n\n" +
		"/quiz — start a new quiz\n" +
		"/progress — show your progress report\n" +
		"/help — this message"
	msgQuizUnavailable  = "Couldn't start a quiz, please try again later."
	msgNoWords          = "The word list is empty — nothing to quiz on yet."
	msgStoreUnavailable = "The word list can't be reached right now. Please try again later."
	msgNotSaved         = "⚠️ Your results could not be saved and will not count towards the next quiz."
	msgSessionExpired   = "This quiz has expired. Start a new one with /quiz."
	msgAlreadyAnswered  = "You already answered this question."
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. Try /quiz to start a quiz or /progress to see your progress."
)

const progressBarWidth = 20

// renderQuestion formats the prompt for a question.
func renderQuestion(q entities.Question, number, total int) string {
	var prompt string
	switch q.Type {
	case entities.QuestionTypeDefinition:
		prompt = fmt.Sprintf("What does <b>%s</b> mean?", q.Word)
	case entities.QuestionTypeSynonym:
		prompt = fmt.Sprintf("Which word is a <i>synonym</i> of <b>%s</b>?", q.Word)
	case entities.QuestionTypeAntonym:
		prompt = fmt.Sprintf("Which word is an <i>antonym</i> of <b>%s</b>?", q.Word)
	}

	return fmt.Sprintf("<b>Question %d/%d</b>\n\n%s", number, total, prompt)
}

// renderFeedback formats the reaction to an answered question.
func renderFeedback(q entities.Question, number, total int, record entities.AnswerRecord) string {
	question := renderQuestion(q, number, total)
	if record.IsCorrect {
		return fmt.Sprintf("%s\n\n✅ Correct!", question)
	}
	return fmt.Sprintf(
		"%s\n\n❌ Wrong! You picked <i>%s</i>.\nThe answer is: <b>%s</b>",
		question, record.UserChoice, record.CorrectAnswer,
	)
}

// renderResults formats the completed-session screen with the score and
// the progress report.
func renderResults(summary service.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>🎉 Quiz Complete! Score: %d/%d</b>\n\n", summary.Score, summary.TotalQuestions)
	b.WriteString(renderProgressReport(summary))

	if len(summary.Incorrect) > 0 {
		b.WriteString("\n<b>Words to revise:</b>\n")
		for _, detail := range summary.Incorrect {
			fmt.Fprintf(&b, "• <b>%s</b>", detail.Record.Word)
			if detail.Entry != nil {
				fmt.Fprintf(&b, " (%s) — %s", detail.Entry.PartOfSpeech, detail.Entry.Definition)
			}
			b.WriteString("\n")
		}
	}

	if !summary.Saved {
		b.WriteString("\n" + msgNotSaved + "\n")
	}

	return b.String()
}

// renderProgressReport formats the repetition histogram and mastery stats.
func renderProgressReport(summary service.Summary) string {
	var b strings.Builder

	b.WriteString("<b>📊 Progress Report</b>\n")
	b.WriteString("Occasions correctly answered / number of words\n\n")

	for _, bucket := range summary.Histogram {
		fmt.Fprintf(&b, "%d / %d\n", bucket.Repetition, bucket.Words)
	}

	bar := buildProgressBar(summary.MasteredWords, summary.TotalWords, progressBarWidth)
	fmt.Fprintf(&b, "\n%s\n<b>Mastered: %d/%d words</b>\n",
		bar, summary.MasteredWords, summary.TotalWords)

	return b.String()
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
