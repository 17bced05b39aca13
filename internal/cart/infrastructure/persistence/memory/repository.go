// Package memory 提供购物车仓储的进程内实现
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wyfcoding/motoparts/internal/cart/domain"
)

// CartItemRepository 内存购物车仓储
type CartItemRepository struct {
	mu     sync.RWMutex
	items  map[uint]domain.CartItem
	nextID uint
}

// NewCartItemRepository 创建内存购物车仓储
func NewCartItemRepository() *CartItemRepository {
	return &CartItemRepository{items: make(map[uint]domain.CartItem), nextID: 1}
}

func (r *CartItemRepository) Save(ctx context.Context, item *domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	r.items[item.ID] = *item
	return nil
}

func (r *CartItemRepository) GetByID(ctx context.Context, id uint) (*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (r *CartItemRepository) GetByCartAndProduct(ctx context.Context, cartID string, productID uint) (*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID {
			out := item
			return &out, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *CartItemRepository) ListByCart(ctx context.Context, cartID string) ([]*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint, 0)
	for id, item := range r.items {
		if item.CartID == cartID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.CartItem, 0, len(ids))
	for _, id := range ids {
		item := r.items[id]
		out = append(out, &item)
	}
	return out, nil
}

func (r *CartItemRepository) Delete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *CartItemRepository) DeleteByCart(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}
