package telegram

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Notifier delivers plain-text messages to a single fixed chat.
//
// Delivery is best-effort: failures are logged with the message text and
// never reported to the caller, so a broken bot token or a Telegram outage
// can never take the poll loop down with it.
type Notifier struct {
	bot    *tele.Bot
	chatID int64
	logger *zap.Logger
}

// NewNotifier creates a Telegram notifier. telebot verifies the token with a
// getMe call, so an unusable token fails here rather than on first send.
func NewNotifier(token string, chatID int64, timeout time.Duration, logger *zap.Logger) (*Notifier, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, err
	}
	return &Notifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// Send delivers text to the configured chat.
func (n *Notifier) Send(text string) {
	if _, err := n.bot.Send(tele.ChatID(n.chatID), text); err != nil {
		n.logger.Error("Failed to send message",
			zap.Int64("chat_id", n.chatID),
			zap.String("text", text),
			zap.Error(err),
		)
		return
	}
	n.logger.Info("Message sent",
		zap.Int64("chat_id", n.chatID),
		zap.String("text", text),
	)
}
