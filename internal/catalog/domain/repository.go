package domain

import (
	"context"
	"errors"
)

// ErrCategoryNotFound 分类不存在
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// 保存分类，创建时回填 ID
	Save(ctx context.Context, category *Category) error
	// 按 slug 精确查找，不存在返回 ErrCategoryNotFound
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	// 按插入顺序列出全部分类
	List(ctx context.Context) ([]*Category, error)
}

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// 保存商品，创建时回填 ID
	Save(ctx context.Context, product *Product) error
	// 按 ID 查找，不存在返回 ErrProductNotFound
	GetByID(ctx context.Context, id uint) (*Product, error)
	// 按 slug 精确查找，不存在返回 ErrProductNotFound
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	// 按插入顺序列出满足条件的商品
	List(ctx context.Context, filter ProductFilter) ([]*Product, error)
	// 商品总数（种子数据判断使用）
	Count(ctx context.Context) (int64, error)
}

// TestimonialRepository 评价仓储接口
type TestimonialRepository interface {
	Save(ctx context.Context, testimonial *Testimonial) error
	List(ctx context.Context) ([]*Testimonial, error)
}
