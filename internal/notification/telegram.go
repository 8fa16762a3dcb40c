package notification

import (
	"context"
	"fmt"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes poll activity to one configured organizer chat.
// With an empty token or chat id it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyParticipantAdded(ctx context.Context, event *domain.Event, name string) {
	text := fmt.Sprintf(
		"*New answer*\n\n"+"Event: %s\n"+"Participant: %s",
		event.Title, name,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyDateToggled(ctx context.Context, event *domain.Event, option domain.DateOption, confirmed bool) {
	state := "confirmed"
	if !confirmed {
		state = "unconfirmed"
	}
	label := option.Formatted
	if label == "" {
		label = option.Datetime
	}
	text := fmt.Sprintf(
		"*Date %s*\n\n"+"Event: %s\n"+"Date: %s",
		state, event.Title, label,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
