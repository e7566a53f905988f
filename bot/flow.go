package bot

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"Meadow/models"
	"Meadow/pkg/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleText 按发送者当前会话状态解释消息。没有会话就什么都不做。
// 校验失败（价格不是数字）只回提示，状态不推进，库也不动。
func (h *Handler) handleText(ctx context.Context, msg *tgbotapi.Message) {
	uid := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	sess, ok := h.Sessions.Get(ctx, uid)
	if !ok || sess.State == models.StateIdle {
		return
	}

	switch sess.State {
	case models.StateAddName:
		product, err := h.Products.CreateDraft(ctx, text)
		if err != nil {
			log.L.Error("create draft product", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		h.Sessions.Set(ctx, uid, models.Session{State: models.StateAddCategory, ProductID: product.ID})
		h.reply(chatID, "📂 Enter the category (Jam, Honey, Tea):")

	case models.StateAddCategory:
		if err := h.Products.UpdateField(ctx, sess.ProductID, "category", text); err != nil {
			log.L.Error("update category", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		h.Sessions.Set(ctx, uid, models.Session{State: models.StateAddPrice, ProductID: sess.ProductID})
		h.reply(chatID, "💰 Enter the price:")

	case models.StateAddPrice:
		price, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			h.reply(chatID, "❌ Enter a number.")
			return
		}
		if err := h.Products.UpdateField(ctx, sess.ProductID, "price", price); err != nil {
			log.L.Error("update price", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		h.Sessions.Set(ctx, uid, models.Session{State: models.StateAddDescription, ProductID: sess.ProductID})
		h.reply(chatID, "📝 Enter the description:")

	case models.StateAddDescription:
		if err := h.Products.UpdateField(ctx, sess.ProductID, "description", text); err != nil {
			log.L.Error("update description", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		h.Sessions.Set(ctx, uid, models.Session{State: models.StateAddPhoto, ProductID: sess.ProductID})
		h.reply(chatID, "📷 Now send a photo of the product (or type 'skip'):")

	case models.StateAddPhoto:
		if strings.EqualFold(text, "skip") {
			h.Sessions.Clear(ctx, uid)
			h.reply(chatID, "✅ Product added!")
			return
		}
		h.reply(chatID, "📷 Send a photo or type 'skip'.")

	case models.StateEditName:
		h.finishEdit(ctx, uid, chatID, sess.ProductID, "name", text, "✅ Name updated!")

	case models.StateEditCategory:
		h.finishEdit(ctx, uid, chatID, sess.ProductID, "category", text, "✅ Category updated!")

	case models.StateEditPrice:
		price, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			h.reply(chatID, "❌ Enter a number.")
			return
		}
		h.finishEdit(ctx, uid, chatID, sess.ProductID, "price", price, "✅ Price updated!")

	case models.StateEditDescription:
		h.finishEdit(ctx, uid, chatID, sess.ProductID, "description", text, "✅ Description updated!")

	case models.StateSupportMessage:
		username := displayName(msg.From)
		if _, err := h.Support.Append(ctx, uid, username, text, false); err != nil {
			log.L.Error("append support message", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		h.NotifySupportRequest(uid, username, text)
		h.Sessions.Clear(ctx, uid)
		h.reply(chatID, "✅ Message sent, we will reply soon!")

	case models.StateSupportReply:
		if _, err := h.Support.Append(ctx, sess.TargetUserID, displayName(msg.From), text, true); err != nil {
			log.L.Error("append support reply", zap.Error(err))
			h.reply(chatID, "Something went wrong, try again")
			return
		}
		h.reply(sess.TargetUserID, "💬 Support: "+text)
		h.Sessions.Clear(ctx, uid)
		h.reply(chatID, "✅ Reply delivered")

	case models.StateOrderMessage:
		if err := h.Orders.MarkInProgress(ctx, sess.OrderID); err != nil {
			log.L.Error("mark order in progress", zap.Error(err))
		}
		h.reply(sess.TargetUserID, fmt.Sprintf("📦 About your order #%d: %s", sess.OrderID, text))
		h.Sessions.Clear(ctx, uid)
		h.reply(chatID, "✅ Message delivered, order is in progress")

	case models.StateEditPhoto:
		h.reply(chatID, "📷 Send a photo.")
	}
}

// handlePhoto 只在等图的两个状态下生效，其余状态静默忽略
func (h *Handler) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	uid := msg.From.ID
	chatID := msg.Chat.ID

	sess, ok := h.Sessions.Get(ctx, uid)
	if !ok || (sess.State != models.StateAddPhoto && sess.State != models.StateEditPhoto) {
		return
	}
	if sess.ProductID == 0 {
		return
	}

	// 最后一个尺寸最大
	photo := msg.Photo[len(msg.Photo)-1]
	url, err := h.API.GetFileDirectURL(photo.FileID)
	if err != nil {
		log.L.Warn("resolve photo url", zap.Error(err))
		h.reply(chatID, "Could not fetch the photo, try again")
		return
	}

	filename := fmt.Sprintf("%d.jpg", sess.ProductID)
	if err := h.download(url, filepath.Join(h.Config.Web.ImagesDir(), filename)); err != nil {
		log.L.Warn("download photo", zap.Error(err))
		h.reply(chatID, "Could not fetch the photo, try again")
		return
	}

	if err := h.Products.UpdateField(ctx, sess.ProductID, "image", filename); err != nil {
		log.L.Error("update image", zap.Error(err))
		h.reply(chatID, "Something went wrong, try again")
		return
	}

	h.Sessions.Clear(ctx, uid)
	if sess.State == models.StateAddPhoto {
		h.reply(chatID, "✅ Product added!")
	} else {
		h.reply(chatID, "✅ Photo saved!")
	}
}

func (h *Handler) finishEdit(ctx context.Context, uid, chatID, productID int64, column string, value any, done string) {
	if err := h.Products.UpdateField(ctx, productID, column, value); err != nil {
		log.L.Error("update product field", zap.String("column", column), zap.Error(err))
		h.reply(chatID, "Something went wrong, try again")
		return
	}
	h.Sessions.Clear(ctx, uid)
	h.reply(chatID, done)
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
