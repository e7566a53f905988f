package handler

import (
	"net/http"
	"strconv"

	"Meadow/bot"
	"Meadow/config"
	"Meadow/pkg/context"
	"Meadow/pkg/response"
	"Meadow/service"
	"Meadow/types"

	"github.com/gin-gonic/gin"
)

type Support struct {
	Config  *config.Config
	Support *service.SupportService
	Bot     *bot.Handler
}

func (h *Support) RegisterRouter(r gin.IRouter) {
	support := r.Group("/support")
	support.POST("/send", context.Wrap(h.Send))
	support.GET("/history", context.Wrap(h.History))
}

func (h *Support) Send(c *gin.Context) error {
	var req types.SendSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.Support.Append(c.Request.Context(), req.UserID, req.Username, req.Message, false); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	h.Bot.NotifySupportRequest(req.UserID, req.Username, req.Message)

	c.JSON(http.StatusOK, gin.H{"success": true})
	return nil
}

func (h *Support) History(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "bad user_id")
	}

	items, err := h.Support.History(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	c.JSON(http.StatusOK, types.SupportHistoryResponse{Messages: items})
	return nil
}
