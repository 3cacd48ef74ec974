package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

type ShopHandler struct {
	Shop   *application.ShopUseCases
	Logger *logrus.Logger
}

func NewShopHandler(s *application.ShopUseCases, logger *logrus.Logger) *ShopHandler {
	return &ShopHandler{Shop: s, Logger: logger}
}

func (h *ShopHandler) Products(c *gin.Context) {
	items, err := h.Shop.ListProducts(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "products", map[string]any{"total": len(items)})
}

func (h *ShopHandler) Product(c *gin.Context) {
	p, err := h.Shop.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if p == nil {
		notFound(c, "product")
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

func (h *ShopHandler) PlaceOrder(c *gin.Context) {
	var req application.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	o, err := h.Shop.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, o, "order placed", nil)
}

func (h *ShopHandler) Orders(c *gin.Context) {
	items, err := h.Shop.ListOrders(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "orders", map[string]any{"total": len(items)})
}

func (h *ShopHandler) Order(c *gin.Context) {
	o, err := h.Shop.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if o == nil {
		notFound(c, "order")
		return
	}
	response.Success(c, http.StatusOK, o, "order", nil)
}
