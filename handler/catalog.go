package handler

import (
	"net/http"

	"Meadow/config"
	"Meadow/pkg/context"
	"Meadow/pkg/response"
	"Meadow/service"

	"github.com/gin-gonic/gin"
)

type Catalog struct {
	Config  *config.Config
	Catalog *service.CatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	r.GET("/products", context.Wrap(h.List))
}

// List 每次读取都全量重算投影，响应体就是投影本身
func (h *Catalog) List(c *gin.Context) error {
	items, err := h.Catalog.Refresh(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	c.JSON(http.StatusOK, items)
	return nil
}
