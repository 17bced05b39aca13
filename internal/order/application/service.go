// Package application 封装订单的创建与查询服务
package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wyfcoding/motoparts/internal/order/domain"
	"github.com/wyfcoding/motoparts/pkg/logger"
)

// ValidationError 输入校验失败，携带违规字段列表
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(e.Fields, ", "))
}

// OrderDraft 订单草稿，字段由调用方提供，不在服务端重算
type OrderDraft struct {
	Email           string  `json:"email" validate:"required,email"`
	Total           float64 `json:"total" validate:"gte=0"`
	ShippingAddress string  `json:"shipping_address" validate:"required"`
	BillingAddress  string  `json:"billing_address" validate:"required"`
}

// OrderLine 订单行，Price 为调用方提供的下单价格快照
type OrderLine struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// CartClearer 下单成功后清空来源购物车的端口，由购物车服务实现
type CartClearer interface {
	ClearCart(ctx context.Context, cartID string) error
}

// Service 订单应用服务
type Service struct {
	repo      domain.OrderRepository
	carts     CartClearer
	publisher domain.EventPublisher
	topic     string
	validate  *validator.Validate
}

// NewService 创建订单应用服务
func NewService(repo domain.OrderRepository, carts CartClearer, publisher domain.EventPublisher, topic string) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		publisher: publisher,
		topic:     topic,
		validate:  validator.New(),
	}
}

// PlaceOrder 将购物车内容固化为订单：校验草稿与全部订单行，
// 原子创建订单与条目，随后清空来源购物车并发布事件。
// 清空购物车或发布事件失败只记录日志，不回滚已提交的订单。
func (s *Service) PlaceOrder(ctx context.Context, draft OrderDraft, lines []OrderLine, cartID string) (*domain.Order, error) {
	var fields []string
	fields = append(fields, s.invalidFields(draft, "")...)
	for i, line := range lines {
		fields = append(fields, s.invalidFields(line, fmt.Sprintf("items[%d].", i))...)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	order := &domain.Order{
		Email:           draft.Email,
		Total:           draft.Total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: draft.ShippingAddress,
		BillingAddress:  draft.BillingAddress,
	}
	items := make([]*domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if err := s.repo.Create(ctx, order, items); err != nil {
		return nil, err
	}

	if cartID != "" {
		if err := s.carts.ClearCart(ctx, cartID); err != nil {
			logger.Warn(ctx, "Failed to clear cart after order placement", "order_id", order.ID, "cart_id", cartID, "error", err)
		}
	}

	event := domain.OrderPlacedEvent{
		OrderID:   order.ID,
		Email:     order.Email,
		Total:     order.Total,
		ItemCount: len(items),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, s.topic, fmt.Sprintf("%d", order.ID), event); err != nil {
		logger.Warn(ctx, "Failed to publish order placed event", "order_id", order.ID, "error", err)
	}

	return order, nil
}

// GetOrder 按 ID 获取订单
func (s *Service) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// GetOrderItems 列出订单条目
func (s *Service) GetOrderItems(ctx context.Context, orderID uint) ([]*domain.OrderItem, error) {
	return s.repo.ListItems(ctx, orderID)
}

// invalidFields 返回结构体校验失败的字段名列表
func (s *Service) invalidFields(v any, prefix string) []string {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{prefix + "unknown"}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, prefix+strings.ToLower(fe.Field()))
	}
	return fields
}
