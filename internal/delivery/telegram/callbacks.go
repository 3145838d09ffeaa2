package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/oliverwhitby/elevenplus-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)
	chatID := cb.Message.Chat.ID

	switch data.Action {
	case actionQuiz:
		h.handleQuizCallback(ctx, cb, chatID, data.Params)
	case actionProgress:
		h.withErrorHandling(h.handleProgress)(ctx, chatID)
		h.answerCallback(cb, "")
	default:
		h.answerCallback(cb, "")
	}
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, params []string) {
	if len(params) == 0 {
		h.answerCallback(cb, "")
		return
	}

	switch params[0] {
	case quizStart, quizRestart:
		h.sessions.Delete(chatID)
		h.withErrorHandling(h.handleQuizStart)(ctx, chatID)
		h.answerCallback(cb, "")

	case quizAnswer:
		h.handleAnswerCallback(cb, chatID, params[1:])

	case quizNext:
		h.handleNextCallback(ctx, cb, chatID, params[1:])

	default:
		h.answerCallback(cb, "")
	}
}

// handleAnswerCallback submits the tapped option for the question the
// button belongs to. Taps on stale questions are ignored.
func (h *Handler) handleAnswerCallback(cb *tgbotapi.CallbackQuery, chatID int64, params []string) {
	session := h.sessions.Get(chatID)
	if session == nil || session.IsComplete() {
		h.answerCallback(cb, msgSessionExpired)
		return
	}

	questionNum, optionIdx, ok := parseAnswerParams(params)
	if !ok || questionNum != session.QuestionNumber() {
		h.answerCallback(cb, msgSessionExpired)
		return
	}

	options, err := session.CurrentOptions()
	if err != nil || optionIdx < 0 || optionIdx >= len(options) {
		h.answerCallback(cb, msgSessionExpired)
		return
	}

	record, err := session.Submit(options[optionIdx])
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubmitted) {
			h.answerCallback(cb, msgAlreadyAnswered)
			return
		}
		h.logger.Error("submit answer",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.answerCallback(cb, msgInternalError)
		return
	}

	q, _ := session.CurrentQuestion()
	text := renderFeedback(q, session.QuestionNumber(), session.TotalQuestions(), record)

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	kb := buildNextKeyboard(session.QuestionNumber(), session.TotalQuestions())
	edit.ReplyMarkup = &kb
	h.send(edit)

	h.answerCallback(cb, "")
}

// handleNextCallback advances the session and shows the next question
// or the results screen.
func (h *Handler) handleNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, params []string) {
	session := h.sessions.Get(chatID)
	if session == nil {
		h.answerCallback(cb, msgSessionExpired)
		return
	}

	if len(params) != 1 {
		h.answerCallback(cb, "")
		return
	}
	questionNum, err := strconv.Atoi(params[0])
	if err != nil || questionNum != session.QuestionNumber() {
		h.answerCallback(cb, msgSessionExpired)
		return
	}

	if err := session.Advance(); err != nil {
		h.answerCallback(cb, msgSessionExpired)
		return
	}

	if session.IsComplete() {
		summary := h.quizService.Finish(ctx, session)
		h.sessions.Delete(chatID)

		msg := newHTMLMessage(chatID, renderResults(summary))
		msg.ReplyMarkup = buildResultsKeyboard()
		h.send(msg)
		h.answerCallback(cb, "")
		return
	}

	if err := h.sendQuestion(chatID, session); err != nil {
		h.logger.Error("send question",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
	h.answerCallback(cb, "")
}

// parseAnswerParams extracts question number and option index from
// answer callback params.
func parseAnswerParams(params []string) (questionNum, optionIdx int, ok bool) {
	if len(params) != 2 {
		return 0, 0, false
	}

	questionNum, err1 := strconv.Atoi(params[0])
	optionIdx, err2 := strconv.Atoi(params[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	return questionNum, optionIdx, true
}

// answerCallback acknowledges a callback query, removing the client's
// loading indicator.
func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	answer := tgbotapi.NewCallback(cb.ID, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer", zap.Error(err))
	}
}
