// Package mysql 提供购物车仓储的关系型实现
package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/motoparts/internal/cart/domain"
	"gorm.io/gorm"
)

type cartItemRepository struct{ db *gorm.DB }

// NewCartItemRepository 创建购物车仓储
func NewCartItemRepository(db *gorm.DB) domain.CartItemRepository {
	return &cartItemRepository{db: db}
}

func (r *cartItemRepository) Save(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartItemRepository) GetByID(ctx context.Context, id uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByCartAndProduct(ctx context.Context, cartID string, productID uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) ListByCart(ctx context.Context, cartID string) ([]*domain.CartItem, error) {
	var items []*domain.CartItem
	err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("id").Find(&items).Error
	return items, err
}

func (r *cartItemRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.CartItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *cartItemRepository) DeleteByCart(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error
}
