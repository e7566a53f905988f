package bot

import (
	"context"
	"fmt"

	"Meadow/models"
	"Meadow/pkg/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := h.API.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.L.Warn("answer callback", zap.Error(err))
	}
	if cq.Message == nil || !h.Config.Bot.IsAdmin(cq.From.ID) {
		return
	}

	cb, err := ParseCallback(cq.Data)
	if err != nil {
		log.L.Warn("bad callback payload", zap.String("data", cq.Data))
		return
	}

	uid := cq.From.ID
	chatID := cq.Message.Chat.ID

	switch cb.Kind {
	case KindAdmin:
		h.Sessions.Clear(ctx, uid)
		h.sendProductList(ctx, chatID)

	case KindProduct:
		h.handleProductCallback(ctx, uid, chatID, cb)

	case KindOrder:
		h.handleOrderCallback(ctx, uid, chatID, cb)

	case KindSupport:
		if cb.Action == ActionReply {
			h.Sessions.Set(ctx, uid, models.Session{State: models.StateSupportReply, TargetUserID: cb.ID})
			h.reply(chatID, "✉️ Type your reply to the user:")
		}
	}
}

func (h *Handler) handleProductCallback(ctx context.Context, uid, chatID int64, cb Callback) {
	switch cb.Action {
	case ActionAdd:
		h.Sessions.Set(ctx, uid, models.Session{State: models.StateAddName})
		h.reply(chatID, "📝 Enter the name of the new product:")
		return

	case ActionDelete:
		deleted, err := h.Products.Delete(ctx, cb.ID)
		if err != nil {
			log.L.Error("delete product", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		if !deleted {
			h.reply(chatID, "❌ Product not found")
			return
		}
		h.reply(chatID, "🗑 Product deleted!")
		h.sendProductList(ctx, chatID)
		return
	}

	product, err := h.Products.Get(ctx, cb.ID)
	if err != nil {
		log.L.Error("find product", zap.Error(err))
		h.reply(chatID, "Something went wrong, try again")
		return
	}
	if product == nil {
		h.reply(chatID, "❌ Product not found")
		return
	}

	switch cb.Action {
	case ActionView:
		h.sendProductCard(chatID, product)

	case ActionEditName:
		h.startEdit(ctx, uid, chatID, cb.ID, models.StateEditName, "✏️ Enter the new name:")
	case ActionEditCat:
		h.startEdit(ctx, uid, chatID, cb.ID, models.StateEditCategory, "📂 Enter the category (Jam, Honey, Tea):")
	case ActionEditPrice:
		h.startEdit(ctx, uid, chatID, cb.ID, models.StateEditPrice, "💰 Enter the new price:")
	case ActionEditDesc:
		h.startEdit(ctx, uid, chatID, cb.ID, models.StateEditDescription, "📝 Enter the new description:")
	case ActionEditPhoto:
		h.startEdit(ctx, uid, chatID, cb.ID, models.StateEditPhoto, "📷 Send the new photo:")
	}
}

func (h *Handler) handleOrderCallback(ctx context.Context, uid, chatID int64, cb Callback) {
	order, err := h.Orders.Get(ctx, cb.ID)
	if err != nil {
		log.L.Error("find order", zap.Error(err))
		h.reply(chatID, "Something went wrong, try again")
		return
	}
	if order == nil {
		h.reply(chatID, "❌ Order not found")
		return
	}

	switch cb.Action {
	case ActionView:
		h.sendOrderCard(chatID, order)

	case ActionMessage:
		h.Sessions.Set(ctx, uid, models.Session{
			State:        models.StateOrderMessage,
			OrderID:      order.ID,
			TargetUserID: order.UserID,
		})
		h.reply(chatID, "💬 Type your message to the buyer:")

	case ActionComplete:
		completed, err := h.Orders.Complete(ctx, cb.ID)
		if err != nil {
			log.L.Error("complete order", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		if completed == nil {
			h.reply(chatID, "❌ Order not found")
			return
		}
		h.reply(completed.UserID, fmt.Sprintf("🎉 Your order #%d is completed. Thank you!", completed.ID))
		h.reply(chatID, "✅ Order completed")
	}
}

func (h *Handler) startEdit(ctx context.Context, uid, chatID, productID int64, state models.FlowState, prompt string) {
	h.Sessions.Set(ctx, uid, models.Session{State: state, ProductID: productID})
	h.reply(chatID, prompt)
}
