// Package domain 包含订单的领域模型
package domain

import (
	"context"
	"errors"
)

// ErrOrderNotFound 订单不存在
var ErrOrderNotFound = errors.New("order not found")

// OrderStatus 订单状态
type OrderStatus string

// OrderStatusPending 订单创建后的唯一状态，本服务不实现后续流转
const OrderStatusPending OrderStatus = "pending"

// Order 订单
// 与其条目一并创建，创建后不再变更
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Email           string      `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Total           float64     `gorm:"column:total;not null" json:"total"`
	Status          OrderStatus `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	ShippingAddress string      `gorm:"column:shipping_address;type:text;not null" json:"shipping_address"`
	BillingAddress  string      `gorm:"column:billing_address;type:text;not null" json:"billing_address"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单条目
// Price 为下单时的商品价格快照，历史订单不受后续调价影响
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"column:order_id;index;not null" json:"order_id"`
	ProductID uint    `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	Price     float64 `gorm:"column:price;not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// 原子创建订单及其全部条目：要么全部落库，要么一行不写
	Create(ctx context.Context, order *Order, items []*OrderItem) error
	// 按 ID 查找，不存在返回 ErrOrderNotFound
	Get(ctx context.Context, id uint) (*Order, error)
	// 列出订单条目
	ListItems(ctx context.Context, orderID uint) ([]*OrderItem, error)
}
