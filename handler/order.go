package handler

import (
	"net/http"

	"Meadow/bot"
	"Meadow/config"
	"Meadow/pkg/context"
	"Meadow/pkg/response"
	"Meadow/service"
	"Meadow/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config *config.Config
	Orders *service.OrderService
	Bot    *bot.Handler
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	r.POST("/order/create", context.Wrap(h.Create))
}

func (h *Order) Create(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	order, err := h.Orders.Create(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	h.Bot.NotifyNewOrder(order)

	c.JSON(http.StatusOK, types.CreateOrderResponse{Success: true, OrderID: order.ID})
	return nil
}
