// Package application 封装购物车的命令与查询服务
package application

import (
	"context"
	"errors"

	cartdomain "github.com/wyfcoding/motoparts/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/motoparts/internal/catalog/domain"
)

// ProductReader 购物车所需的商品读取端口，由目录仓储实现
type ProductReader interface {
	GetByID(ctx context.Context, id uint) (*catalogdomain.Product, error)
}

// ItemView 购物车条目与商品快照的联接视图
// 商品被删除后 Product 为 nil，由调用方自行处理
type ItemView struct {
	cartdomain.CartItem
	Product *catalogdomain.Product `json:"product"`
}

// Service 购物车应用服务
type Service struct {
	repo     cartdomain.CartItemRepository
	products ProductReader
}

// NewService 创建购物车应用服务
func NewService(repo cartdomain.CartItemRepository, products ProductReader) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem 加购：已有同商品条目时合并数量并返回原条目，否则创建新条目
// 返回值 created 表示是否新建了条目
func (s *Service) AddItem(ctx context.Context, cartID string, productID uint, quantity int) (item *cartdomain.CartItem, created bool, err error) {
	if quantity < 1 {
		return nil, false, cartdomain.ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return nil, false, cartdomain.ErrProductNotFound
		}
		return nil, false, err
	}
	if !product.InStock {
		return nil, false, cartdomain.ErrProductOutOfStock
	}

	existing, err := s.repo.GetByCartAndProduct(ctx, cartID, productID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.repo.Save(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, cartdomain.ErrItemNotFound) {
		return nil, false, err
	}

	item = &cartdomain.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, false, err
	}
	return item, true, nil
}

// UpdateQuantity 修改条目数量，不校验库存上限
func (s *Service) UpdateQuantity(ctx context.Context, itemID uint, quantity int) (*cartdomain.CartItem, error) {
	if quantity < 1 {
		return nil, cartdomain.ErrInvalidQuantity
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 删除条目；条目已不存在时返回 false 而非错误
func (s *Service) RemoveItem(ctx context.Context, itemID uint) (bool, error) {
	return s.repo.Delete(ctx, itemID)
}

// ClearCart 清空购物车，幂等
func (s *Service) ClearCart(ctx context.Context, cartID string) error {
	return s.repo.DeleteByCart(ctx, cartID)
}

// ListCart 列出购物车条目并联接当前商品快照
func (s *Service) ListCart(ctx context.Context, cartID string) ([]*ItemView, error) {
	items, err := s.repo.ListByCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	views := make([]*ItemView, 0, len(items))
	for _, item := range items {
		view := &ItemView{CartItem: *item}
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err == nil {
			view.Product = product
		} else if !errors.Is(err, catalogdomain.ErrProductNotFound) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Summary 按当前购物车内容计算小计、运费、税额与总价
func (s *Service) Summary(ctx context.Context, cartID string) (cartdomain.Summary, error) {
	views, err := s.ListCart(ctx, cartID)
	if err != nil {
		return cartdomain.Summary{}, err
	}

	lines := make([]cartdomain.PricedLine, 0, len(views))
	for _, v := range views {
		if v.Product == nil {
			continue
		}
		lines = append(lines, cartdomain.PricedLine{Price: v.Product.Price, Quantity: v.Quantity})
	}
	return cartdomain.Summarize(lines), nil
}
