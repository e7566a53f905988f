package bot

import (
	"fmt"

	"Meadow/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// 商品列表按两个一行排，结尾固定一个"添加"按钮
func productListKeyboard(products []models.Product) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, p := range products {
		btn := tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%d — %s", p.ID, p.Name),
			Callback{Kind: KindProduct, Action: ActionView, ID: p.ID}.Encode(),
		)
		row = append(row, btn)
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	addLabel := "➕ Add product"
	if len(products) == 0 {
		addLabel = "➕ Add first product"
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(addLabel, Callback{Kind: KindProduct, Action: ActionAdd}.Encode()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productActionsKeyboard(productID int64) tgbotapi.InlineKeyboardMarkup {
	btn := func(label, action string) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(label, Callback{Kind: KindProduct, Action: action, ID: productID}.Encode())
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(btn("✏️ name", ActionEditName), btn("📂 category", ActionEditCat)),
		tgbotapi.NewInlineKeyboardRow(btn("💰 price", ActionEditPrice), btn("📝 description", ActionEditDesc)),
		tgbotapi.NewInlineKeyboardRow(btn("📷 photo", ActionEditPhoto), btn("🗑 delete", ActionDelete)),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩ back", Callback{Kind: KindAdmin, Action: ActionList}.Encode()),
		),
	)
}

func orderListKeyboard(orders []models.Order) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, o := range orders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("#%d %s — %d (%s)", o.ID, o.Username, o.TotalPrice, o.Status),
				Callback{Kind: KindOrder, Action: ActionView, ID: o.ID}.Encode(),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func orderActionsKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 message buyer", Callback{Kind: KindOrder, Action: ActionMessage, ID: orderID}.Encode()),
			tgbotapi.NewInlineKeyboardButtonData("✅ complete", Callback{Kind: KindOrder, Action: ActionComplete, ID: orderID}.Encode()),
		),
	)
}

func supportReplyKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✉️ reply", Callback{Kind: KindSupport, Action: ActionReply, ID: userID}.Encode()),
		),
	)
}
