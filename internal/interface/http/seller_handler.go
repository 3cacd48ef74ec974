package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

type SellerHandler struct {
	Seller *application.SellerUseCases
	Logger *logrus.Logger
}

func NewSellerHandler(s *application.SellerUseCases, logger *logrus.Logger) *SellerHandler {
	return &SellerHandler{Seller: s, Logger: logger}
}

func (h *SellerHandler) List(c *gin.Context) {
	items, err := h.Seller.ListListings(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "listings", map[string]any{"total": len(items)})
}

func (h *SellerHandler) Create(c *gin.Context) {
	var in application.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	l, err := h.Seller.CreateListing(c.Request.Context(), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, l, "listing created", nil)
}

func (h *SellerHandler) Update(c *gin.Context) {
	var in application.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badPayload(c, err)
		return
	}
	l, err := h.Seller.UpdateListing(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, l, "listing updated", nil)
}

func (h *SellerHandler) Delete(c *gin.Context) {
	if err := h.Seller.DeleteListing(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true}, "listing deleted", nil)
}
