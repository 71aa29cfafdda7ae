package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleUpdates runs the long-polling loop until ctx is cancelled.
func (h *Handler) HandleUpdates(ctx context.Context, bot *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	for {
		var update tgbotapi.Update
		var ok bool
		select {
		case <-ctx.Done():
			return
		case update, ok = <-updates:
			if !ok {
				return
			}
		}

		if update.CallbackQuery != nil {
			h.handleCallback(ctx, bot, update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}

		m := update.Message
		reply := h.HandleMessage(ctx, m.Chat.ID, m.Command(), m.CommandArguments(), m.Text)

		action := m.Command()
		if action == "" {
			action = "text"
		}
		h.log.Info().
			Int64("chat_id", m.Chat.ID).
			Str("user", userName(m.From)).
			Str("action", action).
			Msg("message handled") // лог введённой команды
		h.send(bot, m.Chat.ID, reply)
	}
}

// handleCallback treats a menu button press as the command in its data.
func (h *Handler) handleCallback(ctx context.Context, bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	reply := h.HandleMessage(ctx, chatID, callback.Data, "", "")
	h.send(bot, chatID, reply)

	if _, err := bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		h.log.Warn().Err(err).Msg("callback answer failed")
	}
	h.log.Info().
		Int64("chat_id", chatID).
		Str("user", userName(callback.From)).
		Str("action", "button "+callback.Data).
		Msg("callback handled")
}

func (h *Handler) send(bot *tgbotapi.BotAPI, chatID int64, reply Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.Keyboard != nil {
		msg.ReplyMarkup = *reply.Keyboard
	}
	if _, err := bot.Send(msg); err != nil {
		h.log.Error().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}

func userName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}
