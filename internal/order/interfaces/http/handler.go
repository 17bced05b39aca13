// Package http 提供订单相关的 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/motoparts/internal/order/application"
	"github.com/wyfcoding/motoparts/internal/order/domain"
	"github.com/wyfcoding/motoparts/pkg/logger"
	"github.com/wyfcoding/motoparts/pkg/metrics"
)

// OrderHandler HTTP 处理器
// 负责处理下单与订单查询请求
type OrderHandler struct {
	app *application.Service
	m   *metrics.Metrics
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(app *application.Service, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{app: app, m: m}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/orders", h.PlaceOrder)
	router.GET("/orders/:id", h.GetOrder)
}

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	Order  application.OrderDraft  `json:"order"`
	Items  []application.OrderLine `json:"items"`
	CartID string                  `json:"cart_id"`
}

// PlaceOrder 下单
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.app.PlaceOrder(c.Request.Context(), req.Order, req.Items, req.CartID)
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error(), "fields": verr.Fields})
		return
	case err != nil:
		logger.Error(c.Request.Context(), "Failed to place order", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.m.OrdersPlacedTotal.Inc()
	h.m.OrderTotalAmount.Observe(order.Total)
	c.JSON(http.StatusCreated, order)
}

// GetOrder 获取订单
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	order, err := h.app.GetOrder(c.Request.Context(), uint(id))
	if errors.Is(err, domain.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get order", "order_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, order)
}
