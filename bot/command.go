package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Meadow/models"
	"Meadow/pkg/log"
	"Meadow/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		greeting := tgbotapi.NewMessage(chatID, "Welcome to Meadow! 🌿 Jam, honey and tea straight from the hills.")
		if external := h.Config.Bot.ExternalURL; external != "" {
			greeting.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonURL("🛍 Open shop", strings.TrimRight(external, "/")+"/web/"),
				),
			)
		}
		h.send(greeting)

	case "admin":
		if !h.Config.Bot.IsAdmin(msg.From.ID) {
			h.reply(chatID, "⛔ Access denied")
			return
		}
		h.sendProductList(ctx, chatID)

	case "orders":
		if !h.Config.Bot.IsAdmin(msg.From.ID) {
			h.reply(chatID, "⛔ Access denied")
			return
		}
		h.sendOrderList(ctx, chatID)

	case "support":
		h.Sessions.Set(ctx, msg.From.ID, models.Session{State: models.StateSupportMessage})
		h.reply(chatID, "🆘 Describe your problem in one message:")
	}
}

func (h *Handler) sendProductList(ctx context.Context, chatID int64) {
	products, err := h.Products.List(ctx)
	if err != nil {
		log.L.Error("list products", zap.Error(err))
		h.reply(chatID, "Something went wrong, try again")
		return
	}
	msg := tgbotapi.NewMessage(chatID, "📦 Admin panel — products:")
	msg.ReplyMarkup = productListKeyboard(products)
	h.send(msg)
}

func (h *Handler) sendOrderList(ctx context.Context, chatID int64) {
	orders, err := h.Orders.ListRecent(ctx, 20)
	if err != nil {
		log.L.Error("list orders", zap.Error(err))
		h.reply(chatID, "Something went wrong, try again")
		return
	}
	if len(orders) == 0 {
		h.reply(chatID, "📭 No orders yet")
		return
	}
	msg := tgbotapi.NewMessage(chatID, "🧾 Recent orders:")
	msg.ReplyMarkup = orderListKeyboard(orders)
	h.send(msg)
}

func (h *Handler) sendProductCard(chatID int64, p *models.Product) {
	text := fmt.Sprintf("🏷 %s\n📂 Category: %s\n💰 Price: %d\n📝 %s", p.Name, p.Category, p.Price, p.Description)
	kb := productActionsKeyboard(p.ID)

	if p.Image != "" {
		path := filepath.Join(h.Config.Web.ImagesDir(), p.Image)
		if _, err := os.Stat(path); err == nil {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
			photo.Caption = text
			photo.ReplyMarkup = kb
			h.send(photo)
			return
		}
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) sendOrderCard(chatID int64, o *models.Order) {
	msg := tgbotapi.NewMessage(chatID, formatOrder(o))
	msg.ReplyMarkup = orderActionsKeyboard(o.ID)
	h.send(msg)
}

func formatOrder(o *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 Order #%d (%s)\n👤 %s (id %d)\n", o.ID, o.OrderSn, o.Username, o.UserID)
	fmt.Fprintf(&b, "%s\n", formatCart(o))
	fmt.Fprintf(&b, "💰 Total: %d\n📌 Status: %s\n🕒 %s", o.TotalPrice, o.Status, o.CreatedAt.Format(types.TimeLayout))
	return b.String()
}

func formatCart(o *models.Order) string {
	var items []types.CartItem
	if err := json.Unmarshal(o.Products, &items); err != nil || len(items) == 0 {
		return "(cart unavailable)"
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %s × %g — %d", item.Name, item.Weight, item.Price)
	}
	return b.String()
}
