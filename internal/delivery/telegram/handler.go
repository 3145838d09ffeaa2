package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/oliverwhitby/elevenplus-bot/internal/service"
	"github.com/oliverwhitby/elevenplus-bot/internal/storage"
)

// QuizService is the engine surface the delivery layer consumes.
type QuizService interface {
	StartSession(ctx context.Context) (*service.Session, error)
	Finish(ctx context.Context, session *service.Session) service.Summary
	ProgressReport(ctx context.Context) (service.Summary, error)
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quizService QuizService
	sessions    *storage.SessionStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	sessions *storage.SessionStorage,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		sessions:    sessions,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start":
		h.handleStartCommand(chatID)
	case "quiz":
		h.withErrorHandling(h.handleQuizStart)(ctx, chatID)
	case "progress":
		h.withErrorHandling(h.handleProgress)(ctx, chatID)
	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))
	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// send delivers a message and logs delivery errors.
func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("send message", zap.Error(err))
	}
}
