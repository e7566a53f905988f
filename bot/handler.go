package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"Meadow/config"
	"Meadow/pkg/log"
	"Meadow/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Handler 机器人入口：命令、回调、按会话状态分发的文本和图片
type Handler struct {
	Config   *config.Config
	API      API
	Sessions service.SessionStore
	Products *service.ProductService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Support  *service.SupportService

	download func(url, path string) error
}

func NewHandler(
	conf *config.Config,
	api API,
	sessions service.SessionStore,
	products *service.ProductService,
	catalog *service.CatalogService,
	orders *service.OrderService,
	support *service.SupportService,
) *Handler {
	return &Handler{
		Config:   conf,
		API:      api,
		Sessions: sessions,
		Products: products,
		Catalog:  catalog,
		Orders:   orders,
		Support:  support,
		download: downloadFile,
	}
}

// Run 配置了外部地址就注册 webhook 并等退出，否则长轮询
func (h *Handler) Run(ctx context.Context) error {
	if _, err := h.API.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}

	if external := h.Config.Bot.ExternalURL; external != "" {
		link := fmt.Sprintf("%s/webhook/%s", strings.TrimRight(external, "/"), h.Config.Bot.Token)
		wh, err := tgbotapi.NewWebhook(link)
		if err != nil {
			return fmt.Errorf("build webhook: %w", err)
		}
		if _, err := h.API.Request(wh); err != nil {
			return fmt.Errorf("set webhook: %w", err)
		}
		log.L.Info("webhook registered", zap.String("url", external))
		<-ctx.Done()
		return ctx.Err()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.API.GetUpdatesChan(u)
	log.L.Info("bot polling started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		msg := update.Message
		switch {
		case msg.IsCommand():
			h.handleCommand(ctx, msg)
		case len(msg.Photo) > 0:
			h.handlePhoto(ctx, msg)
		case msg.Text != "":
			h.handleText(ctx, msg)
		}
	}
}

// send 对外送信失败只记日志，不打断当前流程
func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.API.Send(c); err != nil {
		log.L.Warn("send message failed", zap.Error(err))
	}
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func downloadFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
