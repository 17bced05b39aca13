// Package http 提供目录相关的 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/motoparts/internal/catalog/application"
	"github.com/wyfcoding/motoparts/internal/catalog/domain"
	"github.com/wyfcoding/motoparts/pkg/logger"
)

// CatalogHandler HTTP 处理器
// 负责处理分类、商品与评价的读请求
type CatalogHandler struct {
	app *application.Service
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(app *application.Service) *CatalogHandler {
	return &CatalogHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:slug", h.GetCategory)
	// /products/featured 必须先于 /products/:slug 注册
	router.GET("/products", h.ListProducts)
	router.GET("/products/featured", h.ListFeatured)
	router.GET("/products/:slug", h.GetProduct)
	router.GET("/testimonials", h.ListTestimonials)
}

// ListCategories 列出全部分类
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.app.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory 按 slug 获取分类
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.app.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get category", "slug", c.Param("slug"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListProducts 按查询条件列出商品
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter domain.ProductFilter

	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid categoryId"})
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}
	if c.Query("inStock") == "true" {
		inStock := true
		filter.InStock = &inStock
	}
	filter.Search = c.Query("search")

	products, err := h.app.ListProducts(c.Request.Context(), filter)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListFeatured 列出推荐商品
func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	products, err := h.app.ListFeaturedProducts(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list featured products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct 按 slug 获取商品
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.app.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get product", "slug", c.Param("slug"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListTestimonials 列出全部评价
func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.app.ListTestimonials(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list testimonials", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}
