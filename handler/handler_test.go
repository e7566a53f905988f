package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Meadow/bot"
	"Meadow/config"
	"Meadow/dao"
	"Meadow/models"
	"Meadow/service"
	"Meadow/types"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testToken = "test-token"

type fakeBotAPI struct {
	sent []tgbotapi.Chattable
}

func (f *fakeBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeBotAPI) GetFileDirectURL(fileID string) (string, error) {
	return "http://files.api.local/" + fileID, nil
}

func (f *fakeBotAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

func (f *fakeBotAPI) texts() []string {
	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}

type testEnv struct {
	router  *gin.Engine
	api     *fakeBotAPI
	db      *gorm.DB
	orders  *service.OrderService
	support *service.SupportService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.SupportMessage{},
		&models.Purchase{},
	))

	conf := &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Bot: &config.Bot{Token: testToken, AdminIDs: []int64{1}},
		Web: &config.Web{Dir: t.TempDir()},
	}

	productDAO := dao.NewProduct(db)
	catalog := service.NewCatalogService(conf, productDAO)
	products := service.NewProductService(productDAO, catalog)
	orders := service.NewOrderService(dao.NewOrder(db), dao.NewPurchase(db))
	support := service.NewSupportService(dao.NewSupportMessage(db))

	api := &fakeBotAPI{}
	botHandler := bot.NewHandler(conf, api, service.NewMemorySessionStore(), products, catalog, orders, support)

	r := gin.New()
	group := r.Group("/api")
	(&Catalog{Config: conf, Catalog: catalog}).RegisterRouter(group)
	(&Support{Config: conf, Support: support, Bot: botHandler}).RegisterRouter(group)
	(&Order{Config: conf, Orders: orders, Bot: botHandler}).RegisterRouter(group)
	(&Profile{Config: conf, Orders: orders}).RegisterRouter(group)
	(&Webhook{Config: conf, Bot: botHandler}).RegisterRouter(r)

	return &testEnv{router: r, api: api, db: db, orders: orders, support: support}
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCatalogEndpoint(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, env.db.Create(&models.Product{Name: "Plum Jam", Category: "Jam", Price: 400, Image: "1.jpg"}).Error)
	require.NoError(t, env.db.Create(&models.Product{Name: "Rosehip Tea", Category: "Tea", Price: 500}).Error)

	w := env.get(t, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)

	var items []types.CatalogItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "images/1.jpg", items[0].Image)
	assert.Empty(t, items[1].Image)
}

func TestCatalogEndpointEmpty(t *testing.T) {
	env := setupEnv(t)

	w := env.get(t, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSupportSend(t *testing.T) {
	env := setupEnv(t)

	w := env.postJSON(t, "/api/support/send", types.SendSupportRequest{
		UserID:   42,
		Username: "buyer",
		Message:  "Where is my jam?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	var msg models.SupportMessage
	require.NoError(t, env.db.First(&msg).Error)
	assert.Equal(t, int64(42), msg.UserID)
	assert.False(t, msg.FromAdmin)

	texts := env.api.texts()
	require.NotEmpty(t, texts, "admins must be notified")
	assert.Contains(t, texts[0], "Where is my jam?")
}

func TestSupportSendRejectsEmptyMessage(t *testing.T) {
	env := setupEnv(t)

	w := env.postJSON(t, "/api/support/send", map[string]any{"user_id": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.SupportMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSupportHistory(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	_, err := env.support.Append(ctx, 42, "buyer", "Where is my jam?", false)
	require.NoError(t, err)
	_, err = env.support.Append(ctx, 42, "admin", "It ships tomorrow", true)
	require.NoError(t, err)
	_, err = env.support.Append(ctx, 7, "other", "unrelated", false)
	require.NoError(t, err)

	w := env.get(t, "/api/support/history?user_id=42")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.SupportHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.False(t, resp.Messages[0].FromAdmin)
	assert.True(t, resp.Messages[1].FromAdmin)
	assert.NotEmpty(t, resp.Messages[0].Timestamp)
}

func TestOrderCreate(t *testing.T) {
	env := setupEnv(t)

	w := env.postJSON(t, "/api/order/create", types.CreateOrderRequest{
		UserID:     42,
		Username:   "buyer",
		Cart:       []types.CartItem{{Name: "Plum Jam", Weight: 0.5, Price: 400}},
		TotalPrice: 400,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.OrderID)

	var order models.Order
	require.NoError(t, env.db.First(&order, resp.OrderID).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderSn)

	texts := env.api.texts()
	require.NotEmpty(t, texts, "admins must be notified of a new order")
	assert.Contains(t, texts[0], "New order")
}

func TestOrderCreateRejectsEmptyCart(t *testing.T) {
	env := setupEnv(t)

	w := env.postJSON(t, "/api/order/create", map[string]any{"user_id": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProfile(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	order, err := env.orders.Create(ctx, &types.CreateOrderRequest{
		UserID:     42,
		Username:   "buyer",
		Cart:       []types.CartItem{{Name: "Linden Honey", Weight: 1, Price: 700}},
		TotalPrice: 700,
	})
	require.NoError(t, err)
	_, err = env.orders.Complete(ctx, order.ID)
	require.NoError(t, err)

	w := env.get(t, "/api/profile?user_id=42&username=buyer")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "buyer", resp.Username)
	require.Len(t, resp.Purchases, 1)
	assert.Equal(t, int64(700), resp.Purchases[0].TotalPrice)
	assert.Contains(t, string(resp.Purchases[0].Products), "Linden Honey")
	assert.NotEmpty(t, resp.Purchases[0].Timestamp)
}

func TestProfileNoPurchases(t *testing.T) {
	env := setupEnv(t)

	w := env.get(t, "/api/profile?user_id=42")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Purchases)
}

func TestWebhookRejectsWrongToken(t *testing.T) {
	env := setupEnv(t)

	w := env.postJSON(t, "/webhook/wrong-token", tgbotapi.Update{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestWebhookDispatchesUpdate(t *testing.T) {
	env := setupEnv(t)

	update := tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			From:     &tgbotapi.User{ID: 42},
			Chat:     &tgbotapi.Chat{ID: 42},
			Text:     "/start",
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
		},
	}
	w := env.postJSON(t, "/webhook/"+testToken, update)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotEmpty(t, env.api.texts(), "update must reach the bot handler")
}
