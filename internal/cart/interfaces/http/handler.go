// Package http 提供购物车相关的 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/motoparts/internal/cart/application"
	"github.com/wyfcoding/motoparts/internal/cart/domain"
	"github.com/wyfcoding/motoparts/pkg/logger"
	"github.com/wyfcoding/motoparts/pkg/metrics"
)

// CartHandler HTTP 处理器
// 负责处理购物车的增删改查请求
type CartHandler struct {
	app *application.Service
	m   *metrics.Metrics
}

// NewCartHandler 创建 HTTP 处理器实例
func NewCartHandler(app *application.Service, m *metrics.Metrics) *CartHandler {
	return &CartHandler{app: app, m: m}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	// /cart/clear/:cartId 必须先于 /cart/:id 的 DELETE 注册
	router.GET("/cart/:cartId", h.GetCart)
	router.GET("/cart/:cartId/summary", h.GetSummary)
	router.POST("/cart", h.AddItem)
	router.PUT("/cart/:id", h.UpdateQuantity)
	router.DELETE("/cart/clear/:cartId", h.ClearCart)
	router.DELETE("/cart/:id", h.RemoveItem)
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	CartID    string `json:"cart_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

// GetCart 获取购物车内容（条目联接商品快照）
func (h *CartHandler) GetCart(c *gin.Context) {
	views, err := h.app.ListCart(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list cart", "cart_id", c.Param("cartId"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetSummary 获取购物车结算汇总
func (h *CartHandler) GetSummary(c *gin.Context) {
	summary, err := h.app.Summary(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to summarize cart", "cart_id", c.Param("cartId"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddItem 加购或合并数量
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item, created, err := h.app.AddItem(c.Request.Context(), req.CartID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	case errors.Is(err, domain.ErrProductOutOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product is out of stock"})
		return
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive number"})
		return
	case err != nil:
		logger.Error(c.Request.Context(), "Failed to add cart item", "cart_id", req.CartID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.m.CartOpsTotal.WithLabelValues("add").Inc()
	if created {
		c.JSON(http.StatusCreated, item)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateQuantityRequest 修改数量请求
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity 修改条目数量
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive number"})
		return
	}

	item, err := h.app.UpdateQuantity(c.Request.Context(), uint(id), req.Quantity)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive number"})
		return
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
		return
	case err != nil:
		logger.Error(c.Request.Context(), "Failed to update cart item", "item_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.m.CartOpsTotal.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, item)
}

// RemoveItem 删除条目
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
		return
	}

	removed, err := h.app.RemoveItem(c.Request.Context(), uint(id))
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to remove cart item", "item_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
		return
	}

	h.m.CartOpsTotal.WithLabelValues("remove").Inc()
	c.Status(http.StatusNoContent)
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.app.ClearCart(c.Request.Context(), c.Param("cartId")); err != nil {
		logger.Error(c.Request.Context(), "Failed to clear cart", "cart_id", c.Param("cartId"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.m.CartOpsTotal.WithLabelValues("clear").Inc()
	c.Status(http.StatusNoContent)
}
