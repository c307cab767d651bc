package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/models/dto"
	"gorm.io/gorm"
)

type OrderServiceIn interface {
	CreateCheckout(ctx context.Context, checkout *dto.Checkout) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type OrderHandler struct {
	Service OrderServiceIn
}

func NewOrderHandler(s OrderServiceIn) *OrderHandler {
	return &OrderHandler{Service: s}
}

// POST /checkout
func (h *OrderHandler) CreateCheckout(c *gin.Context) {
	var req dto.Checkout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.Service.CreateCheckout(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
