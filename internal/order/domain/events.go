package domain

import (
	"context"
	"time"
)

// OrderPlacedEvent 订单创建事件
type OrderPlacedEvent struct {
	OrderID   uint      `json:"order_id"`
	Email     string    `json:"email"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
