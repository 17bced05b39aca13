package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cartapp "github.com/wyfcoding/motoparts/internal/cart/application"
	cartmemory "github.com/wyfcoding/motoparts/internal/cart/infrastructure/persistence/memory"
	catalogdomain "github.com/wyfcoding/motoparts/internal/catalog/domain"
	catalogmemory "github.com/wyfcoding/motoparts/internal/catalog/infrastructure/persistence/memory"
	"github.com/wyfcoding/motoparts/internal/order/domain"
	ordermemory "github.com/wyfcoding/motoparts/internal/order/infrastructure/persistence/memory"
)

// capturePublisher 记录发布的事件，供断言使用
type capturePublisher struct {
	topics []string
	events []any
	err    error
}

func (p *capturePublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

type orderFixture struct {
	svc       *Service
	carts     *cartapp.Service
	orders    *ordermemory.OrderRepository
	publisher *capturePublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	products := catalogmemory.NewProductRepository()
	require.NoError(t, products.Save(context.Background(), &catalogdomain.Product{
		Name: "Raider 150 Piston Kit", Slug: "raider-150", Price: 750, InStock: true,
	}))

	carts := cartapp.NewService(cartmemory.NewCartItemRepository(), products)
	orders := ordermemory.NewOrderRepository()
	publisher := &capturePublisher{}
	return &orderFixture{
		svc:       NewService(orders, carts, publisher, "storefront.order.placed"),
		carts:     carts,
		orders:    orders,
		publisher: publisher,
	}
}

func validDraft() OrderDraft {
	return OrderDraft{
		Email:           "rider@example.com",
		Total:           1302.5,
		ShippingAddress: "123 Mabini St, Quezon City",
		BillingAddress:  "123 Mabini St, Quezon City",
	}
}

func TestPlaceOrderPersistsOrderAndItems(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	lines := []OrderLine{
		{ProductID: 1, Quantity: 1, Price: 750},
		{ProductID: 2, Quantity: 2, Price: 110},
	}
	order, err := f.svc.PlaceOrder(ctx, validDraft(), lines, "")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)

	stored, err := f.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", stored.Email)
	assert.Equal(t, 1302.5, stored.Total)

	items, err := f.svc.GetOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, order.ID, items[0].OrderID)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, 750.0, items[0].Price)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestPlaceOrderClearsSourceCart(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, _, err := f.carts.AddItem(ctx, "cart-1", 1, 2)
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(ctx, validDraft(), []OrderLine{{ProductID: 1, Quantity: 2, Price: 750}}, "cart-1")
	require.NoError(t, err)

	views, err := f.carts.ListCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(context.Background(), validDraft(), []OrderLine{{ProductID: 1, Quantity: 1, Price: 750}}, "")
	require.NoError(t, err)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "storefront.order.placed", f.publisher.topics[0])
	event, ok := f.publisher.events[0].(domain.OrderPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, "rider@example.com", event.Email)
	assert.Equal(t, 1, event.ItemCount)
}

func TestPlaceOrderSucceedsWhenPublishFails(t *testing.T) {
	f := newOrderFixture(t)
	f.publisher.err = errors.New("broker unavailable")

	order, err := f.svc.PlaceOrder(context.Background(), validDraft(), []OrderLine{{ProductID: 1, Quantity: 1, Price: 750}}, "")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
}

func TestPlaceOrderRejectsInvalidDraft(t *testing.T) {
	f := newOrderFixture(t)

	draft := validDraft()
	draft.Email = "not-an-email"
	draft.ShippingAddress = ""
	_, err := f.svc.PlaceOrder(context.Background(), draft, []OrderLine{{ProductID: 1, Quantity: 1, Price: 750}}, "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "shippingaddress")

	// 校验失败时不落任何订单
	_, err = f.svc.GetOrder(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestPlaceOrderRejectsInvalidLines(t *testing.T) {
	f := newOrderFixture(t)

	lines := []OrderLine{
		{ProductID: 1, Quantity: 1, Price: 750},
		{ProductID: 0, Quantity: 0, Price: -5},
	}
	_, err := f.svc.PlaceOrder(context.Background(), validDraft(), lines, "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items[1].productid")
	assert.Contains(t, verr.Fields, "items[1].quantity")
	assert.Contains(t, verr.Fields, "items[1].price")
}

func TestPlaceOrderKeepsOrderWhenCartClearTargetsUnknownCart(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.PlaceOrder(context.Background(), validDraft(), []OrderLine{{ProductID: 1, Quantity: 1, Price: 750}}, "no-such-cart")
	require.NoError(t, err)

	stored, err := f.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}
