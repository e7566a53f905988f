package bot

import (
	"os"
	"path/filepath"
	"testing"

	"Meadow/config"
	"Meadow/dao"
	"Meadow/models"
	"Meadow/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const adminID int64 = 1

type fakeAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetFileDirectURL(fileID string) (string, error) {
	return "http://files.api.local/" + fileID, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

// texts 抽出所有已发送的文本消息
func (f *fakeAPI) texts() []string {
	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}

func (f *fakeAPI) lastText() string {
	texts := f.texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// textsTo 发往指定 chat 的文本
func (f *fakeAPI) textsTo(chatID int64) []string {
	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok && msg.ChatID == chatID {
			out = append(out, msg.Text)
		}
	}
	return out
}

func newTestHandler(t *testing.T) (*Handler, *fakeAPI, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.SupportMessage{},
		&models.Purchase{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	conf := &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Bot: &config.Bot{Token: "test-token", AdminIDs: []int64{adminID}},
		Web: &config.Web{Dir: t.TempDir()},
	}

	productDAO := dao.NewProduct(db)
	catalog := service.NewCatalogService(conf, productDAO)
	products := service.NewProductService(productDAO, catalog)
	orders := service.NewOrderService(dao.NewOrder(db), dao.NewPurchase(db))
	support := service.NewSupportService(dao.NewSupportMessage(db))

	api := &fakeAPI{}
	h := NewHandler(conf, api, service.NewMemorySessionStore(), products, catalog, orders, support)
	h.download = func(url, path string) error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		return os.WriteFile(path, []byte("jpeg-bytes"), 0o644)
	}
	return h, api, db
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID, UserName: "user"},
			Chat: &tgbotapi.Chat{ID: userID},
			Text: text,
		},
	}
}

func commandUpdate(userID int64, command string) tgbotapi.Update {
	text := "/" + command
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:     &tgbotapi.User{ID: userID, UserName: "user"},
			Chat:     &tgbotapi.Chat{ID: userID},
			Text:     text,
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}},
		},
	}
}

func photoUpdate(userID int64) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:  &tgbotapi.User{ID: userID, UserName: "user"},
			Chat:  &tgbotapi.Chat{ID: userID},
			Photo: []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large"}},
		},
	}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: userID, UserName: "user"},
			Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: userID},
			},
			Data: data,
		},
	}
}
