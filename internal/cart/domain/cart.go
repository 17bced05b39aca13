// Package domain 包含购物车的领域模型
package domain

import (
	"context"
	"errors"
)

// ErrItemNotFound 购物车条目不存在
var ErrItemNotFound = errors.New("cart item not found")

// ErrInvalidQuantity 数量必须为不小于 1 的整数
var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// ErrProductOutOfStock 商品无库存
var ErrProductOutOfStock = errors.New("product is out of stock")

// CartItem 购物车条目
// CartID 为客户端生成的不透明标识；同一 (cart_id, product_id) 至多一条记录，
// 由加购时的合并逻辑保证，而非唯一约束
type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CartID    string `gorm:"column:cart_id;type:varchar(64);index;not null" json:"cart_id"`
	ProductID uint   `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int    `gorm:"column:quantity;not null;default:1" json:"quantity"`
}

func (CartItem) TableName() string { return "cart_items" }

// CartItemRepository 购物车仓储接口
type CartItemRepository interface {
	// 保存条目，创建时回填 ID
	Save(ctx context.Context, item *CartItem) error
	// 按 ID 查找，不存在返回 ErrItemNotFound
	GetByID(ctx context.Context, id uint) (*CartItem, error)
	// 按 (cartID, productID) 查找，不存在返回 ErrItemNotFound
	GetByCartAndProduct(ctx context.Context, cartID string, productID uint) (*CartItem, error)
	// 列出购物车全部条目
	ListByCart(ctx context.Context, cartID string) ([]*CartItem, error)
	// 删除条目，返回是否真正删除了记录
	Delete(ctx context.Context, id uint) (bool, error)
	// 删除购物车全部条目，购物车为空时也成功
	DeleteByCart(ctx context.Context, cartID string) error
}
