package handler

import (
	"net/http"

	"Meadow/bot"
	"Meadow/config"
	"Meadow/pkg/context"
	"Meadow/pkg/response"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Webhook Telegram 推送入口，路径里的 token 就是这条通道的鉴权
type Webhook struct {
	Config *config.Config
	Bot    *bot.Handler
}

func (h *Webhook) RegisterRouter(r gin.IRouter) {
	r.POST("/webhook/:token", context.Wrap(h.Handle))
}

func (h *Webhook) Handle(c *gin.Context) error {
	if c.Param("token") != h.Config.Bot.Token {
		return response.NewError(http.StatusNotFound, "not found")
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	h.Bot.HandleUpdate(c.Request.Context(), update)
	c.Status(http.StatusOK)
	return nil
}
