package telegram

import (
	"context"
	"errors"

	"github.com/oliverwhitby/elevenplus-bot/internal/repository"
	"github.com/oliverwhitby/elevenplus-bot/internal/service"
)

func (h *Handler) handleStartCommand(chatID int64) {
	msg := newHTMLMessage(chatID, msgWelcome)
	msg.ReplyMarkup = buildStartKeyboard()
	h.send(msg)
}

// handleQuizStart begins a new quiz session for the chat, replacing any
// session still in flight.
func (h *Handler) handleQuizStart(ctx context.Context, chatID int64) error {
	session, err := h.quizService.StartSession(ctx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDataUnavailable):
			h.send(newHTMLMessage(chatID, msgNoWords))
			return nil
		case errors.Is(err, repository.ErrSourceUnavailable):
			h.send(newHTMLMessage(chatID, msgStoreUnavailable))
			return nil
		default:
			return err
		}
	}

	h.sessions.Store(chatID, session)

	return h.sendQuestion(chatID, session)
}

// sendQuestion renders the session's current question with its options.
func (h *Handler) sendQuestion(chatID int64, session *service.Session) error {
	q, err := session.CurrentQuestion()
	if err != nil {
		return err
	}
	options, err := session.CurrentOptions()
	if err != nil {
		return err
	}

	msg := newHTMLMessage(chatID, renderQuestion(q, session.QuestionNumber(), session.TotalQuestions()))
	msg.ReplyMarkup = buildOptionsKeyboard(options, session.QuestionNumber())
	h.send(msg)

	return nil
}

func (h *Handler) handleProgress(ctx context.Context, chatID int64) error {
	summary, err := h.quizService.ProgressReport(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSourceUnavailable) {
			h.send(newHTMLMessage(chatID, msgStoreUnavailable))
			return nil
		}
		return err
	}

	msg := newHTMLMessage(chatID, renderProgressReport(summary))
	msg.ReplyMarkup = buildStartKeyboard()
	h.send(msg)

	return nil
}
