// Package memory 提供目录仓储的进程内实现：map 存储、自增计数器，进程退出即丢失
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wyfcoding/motoparts/internal/catalog/domain"
)

// CategoryRepository 内存分类仓储
type CategoryRepository struct {
	mu     sync.RWMutex
	items  map[uint]domain.Category
	nextID uint
}

// NewCategoryRepository 创建内存分类仓储
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{items: make(map[uint]domain.Category), nextID: 1}
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == 0 {
		category.ID = r.nextID
		r.nextID++
	}
	r.items[category.ID] = *category
	return nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.Slug == slug {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Category, 0, len(r.items))
	for _, id := range sortedKeys(r.items) {
		c := r.items[id]
		out = append(out, &c)
	}
	return out, nil
}

// ProductRepository 内存商品仓储
type ProductRepository struct {
	mu     sync.RWMutex
	items  map[uint]domain.Product
	nextID uint
}

// NewProductRepository 创建内存商品仓储
func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make(map[uint]domain.Product), nextID: 1}
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	r.items[product.ID] = *product
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.Slug == slug {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Product, 0, len(r.items))
	for _, id := range sortedKeys(r.items) {
		p := r.items[id]
		if filter.Matches(&p) {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// TestimonialRepository 内存评价仓储
type TestimonialRepository struct {
	mu     sync.RWMutex
	items  map[uint]domain.Testimonial
	nextID uint
}

// NewTestimonialRepository 创建内存评价仓储
func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{items: make(map[uint]domain.Testimonial), nextID: 1}
}

func (r *TestimonialRepository) Save(ctx context.Context, testimonial *domain.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if testimonial.ID == 0 {
		testimonial.ID = r.nextID
		r.nextID++
	}
	r.items[testimonial.ID] = *testimonial
	return nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]*domain.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Testimonial, 0, len(r.items))
	for _, id := range sortedKeys(r.items) {
		t := r.items[id]
		out = append(out, &t)
	}
	return out, nil
}

// sortedKeys 返回按 ID 升序排列的键，保证插入顺序遍历
func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
