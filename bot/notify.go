package bot

import (
	"fmt"

	"Meadow/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// 广播给管理员，谁收不到就跳过谁

func (h *Handler) NotifyAdmins(text string) {
	for _, adminID := range h.Config.Bot.AdminIDs {
		h.reply(adminID, text)
	}
}

func (h *Handler) NotifySupportRequest(userID int64, username, message string) {
	text := fmt.Sprintf("🆘 Support request from %s (id %d):\n%s", username, userID, message)
	for _, adminID := range h.Config.Bot.AdminIDs {
		msg := tgbotapi.NewMessage(adminID, text)
		msg.ReplyMarkup = supportReplyKeyboard(userID)
		h.send(msg)
	}
}

func (h *Handler) NotifyNewOrder(order *models.Order) {
	text := "🚨 New order!\n\n" + formatOrder(order)
	for _, adminID := range h.Config.Bot.AdminIDs {
		msg := tgbotapi.NewMessage(adminID, text)
		msg.ReplyMarkup = orderActionsKeyboard(order.ID)
		h.send(msg)
	}
}
