package telegram

import (
	"errors"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var errNoBot = errors.New("telegram bot is nil")

// telegramMessageLimit Telegram xabar uzunligi chegarasi (runes)
const telegramMessageLimit = 4096

// sendMessage oddiy matn yuborish, long texts are split
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.sender == nil {
		h.log.Warn().Int64("chat_id", chatID).Msg("send skipped: no sender")
		return
	}
	for _, chunk := range splitMessage(text, telegramMessageLimit) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := h.sender.Send(msg); err != nil {
			h.log.Error().Err(err).Int64("chat_id", chatID).Msg("send failed")
			return
		}
	}
}

// splitMessage matnni limit dan oshmaydigan bo'laklarga, preferring line breaks
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}
	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
