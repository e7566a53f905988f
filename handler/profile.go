package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Meadow/config"
	"Meadow/pkg/context"
	"Meadow/pkg/response"
	"Meadow/service"
	"Meadow/types"

	"github.com/gin-gonic/gin"
)

type Profile struct {
	Config *config.Config
	Orders *service.OrderService
}

func (h *Profile) RegisterRouter(r gin.IRouter) {
	r.GET("/profile", context.Wrap(h.Get))
}

func (h *Profile) Get(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "bad user_id")
	}

	records, err := h.Orders.PurchaseHistory(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	purchases := make([]types.ProfilePurchase, 0, len(records))
	for _, rec := range records {
		purchases = append(purchases, types.ProfilePurchase{
			Products:   json.RawMessage(rec.Products),
			TotalPrice: rec.TotalPrice,
			Timestamp:  rec.CreatedAt.Format(types.TimeLayout),
		})
	}

	c.JSON(http.StatusOK, types.ProfileResponse{
		Username:  c.Query("username"),
		Purchases: purchases,
	})
	return nil
}
