// Package memory 提供订单仓储的进程内实现
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wyfcoding/motoparts/internal/order/domain"
)

// OrderRepository 内存订单仓储
// Create 在单个互斥区内完成订单与条目的全部写入，等价于一次事务
type OrderRepository struct {
	mu         sync.RWMutex
	orders     map[uint]domain.Order
	items      map[uint]domain.OrderItem
	nextOrder  uint
	nextItemID uint
}

// NewOrderRepository 创建内存订单仓储
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:     make(map[uint]domain.Order),
		items:      make(map[uint]domain.OrderItem),
		nextOrder:  1,
		nextItemID: 1,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextOrder
	r.nextOrder++
	r.orders[order.ID] = *order

	for _, item := range items {
		item.ID = r.nextItemID
		r.nextItemID++
		item.OrderID = order.ID
		r.items[item.ID] = *item
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &order, nil
}

func (r *OrderRepository) ListItems(ctx context.Context, orderID uint) ([]*domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint, 0)
	for id, item := range r.items {
		if item.OrderID == orderID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.OrderItem, 0, len(ids))
	for _, id := range ids {
		item := r.items[id]
		out = append(out, &item)
	}
	return out, nil
}
