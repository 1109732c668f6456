package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Start botni ishga tushirish; blocks until ctx is done
func (h *BotHandler) Start(ctx context.Context) error {
	if h.bot == nil {
		return errNoBot
	}
	h.workerPool.start(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			h.workerPool.shutdown()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				h.workerPool.shutdown()
				return nil
			}
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage buyruqni worker pool ga yuborish
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil || !message.IsCommand() {
		return
	}
	var userID int64
	if message.From != nil {
		userID = message.From.ID
	}
	h.log.Debug().Int64("user_id", userID).Str("command", message.Command()).Msg("command received")

	h.workerPool.submit(&messageRequest{
		ctx:    ctx,
		userID: userID,
		chatID: message.Chat.ID,
		text:   message.Text,
	})
}
