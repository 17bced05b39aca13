// Package application 封装目录的查询服务
package application

import (
	"context"
	"time"

	"github.com/wyfcoding/motoparts/internal/catalog/domain"
	"github.com/wyfcoding/motoparts/pkg/cache"
	"github.com/wyfcoding/motoparts/pkg/logger"
)

const (
	cacheKeyCategories   = "catalog:categories"
	cacheKeyTestimonials = "catalog:testimonials"
	cacheKeyFeatured     = "catalog:products:featured"
)

// Service 目录查询服务
// cache 可为 nil，此时所有读取直达仓储
type Service struct {
	categories   domain.CategoryRepository
	products     domain.ProductRepository
	testimonials domain.TestimonialRepository

	cache    *cache.RedisCache
	cacheTTL time.Duration
}

// NewService 创建目录查询服务
func NewService(
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	testimonials domain.TestimonialRepository,
) *Service {
	return &Service{
		categories:   categories,
		products:     products,
		testimonials: testimonials,
	}
}

// WithCache 挂载 Redis 读缓存（分类、评价与推荐商品列表）
func (s *Service) WithCache(c *cache.RedisCache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// ListCategories 列出全部分类
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if s.cache != nil {
		var cached []*domain.Category
		if err := s.cache.GetJSON(ctx, cacheKeyCategories, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	s.fillCache(ctx, cacheKeyCategories, categories)
	return categories, nil
}

// GetCategoryBySlug 按 slug 获取分类
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

// ListProducts 按条件列出商品，所有条件取交集，空条件返回全部
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.products.List(ctx, filter)
}

// ListFeaturedProducts 列出推荐商品
func (s *Service) ListFeaturedProducts(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		var cached []*domain.Product
		if err := s.cache.GetJSON(ctx, cacheKeyFeatured, &cached); err == nil {
			return cached, nil
		}
	}

	featured := true
	products, err := s.products.List(ctx, domain.ProductFilter{Featured: &featured})
	if err != nil {
		return nil, err
	}

	s.fillCache(ctx, cacheKeyFeatured, products)
	return products, nil
}

// GetProductBySlug 按 slug 获取商品
func (s *Service) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.GetBySlug(ctx, slug)
}

// ListTestimonials 列出全部评价
func (s *Service) ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	if s.cache != nil {
		var cached []*domain.Testimonial
		if err := s.cache.GetJSON(ctx, cacheKeyTestimonials, &cached); err == nil {
			return cached, nil
		}
	}

	testimonials, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, err
	}

	s.fillCache(ctx, cacheKeyTestimonials, testimonials)
	return testimonials, nil
}

// fillCache 回填缓存，失败仅记录日志
func (s *Service) fillCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
		logger.Warn(ctx, "Failed to fill catalog cache", "key", key, "error", err)
	}
}
