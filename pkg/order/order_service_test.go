package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"baratie/domain"
	"baratie/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type harness struct {
	repo      *fakeOrderRepository
	menu      *fakeMenu
	guard     *fakeGuard
	publisher *recordingPublisher
	svc       *orderService
	clock     time.Time
}

func newHarness() *harness {
	h := &harness{
		repo:      newFakeOrderRepository(),
		menu:      &fakeMenu{items: map[string]entities.MenuItem{}},
		guard:     &fakeGuard{claimed: map[string]bool{}},
		publisher: &recordingPublisher{},
		clock:     time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
	h.svc = NewOrderService(h.repo, h.menu, h.guard, h.publisher).(*orderService)
	h.svc.now = func() time.Time { return h.clock }
	return h
}

func sampleOrder(userID string) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		UserID: userID,
		CartItems: []domain.CartItemRequest{
			{ID: "item-a", Name: "A", Quantity: 2, Price: dec("100")},
			{ID: "item-b", Name: "B", Quantity: 1, Price: dec("50")},
		},
		TotalAmount: decPtr("250"),
	}
}

func TestPlaceOrder(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	res, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DailyOrderNumber)

	id, err := uuid.Parse(res.OrderID)
	require.NoError(t, err)
	stored := h.repo.orders[id]
	assert.True(t, stored.TotalAmount.Equal(dec("250.00")))
	assert.Equal(t, domain.OrderStatusPlaced, stored.OrderStatus)
	assert.Equal(t, h.clock, stored.OrderDate)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "A", stored.Items[0].Name)
	assert.Equal(t, 1, stored.Items[1].Position)

	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, domain.EventOrderPlaced, h.publisher.events[0].Type)
}

func TestPlaceOrderSequence(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		res, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
		require.NoError(t, err)
		assert.Equal(t, want, res.DailyOrderNumber)
	}

	h.clock = h.clock.Add(24 * time.Hour)
	res, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DailyOrderNumber, "a new UTC day restarts at 1")
}

func TestPlaceOrderFailedInsertLeavesNoGap(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)

	h.repo.createErr = errBoom
	_, err = h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.ErrorIs(t, err, errBoom)

	h.repo.createErr = nil
	res, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DailyOrderNumber)
	assert.Len(t, h.repo.orders, 2)
}

func TestPlaceOrderCounterFailurePersistsNothing(t *testing.T) {
	h := newHarness()
	h.repo.counters.fail = errBoom

	_, err := h.svc.PlaceOrder(context.Background(), sampleOrder("u1"), "")
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, h.repo.orders)
	assert.Empty(t, h.publisher.events)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateOrderRequest)
		want   error
	}{
		{"missing user", func(r *domain.CreateOrderRequest) { r.UserID = "" }, domain.ErrInvalidOrderData},
		{"empty cart", func(r *domain.CreateOrderRequest) { r.CartItems = nil }, domain.ErrInvalidOrderData},
		{"missing total", func(r *domain.CreateOrderRequest) { r.TotalAmount = nil }, domain.ErrInvalidOrderData},
		{"zero quantity", func(r *domain.CreateOrderRequest) { r.CartItems[0].Quantity = 0 }, domain.ErrInvalidOrderData},
		{"negative price", func(r *domain.CreateOrderRequest) { r.CartItems[1].Price = dec("-1") }, domain.ErrInvalidOrderData},
		{"total mismatch", func(r *domain.CreateOrderRequest) { r.TotalAmount = decPtr("249.00") }, domain.ErrTotalAmountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			req := sampleOrder("u1")
			tt.mutate(&req)

			_, err := h.svc.PlaceOrder(context.Background(), req, "")
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, h.repo.counters.values, "no number may be allocated for a rejected order")
		})
	}
}

func TestPlaceOrderToleratesRounding(t *testing.T) {
	h := newHarness()
	req := domain.CreateOrderRequest{
		UserID:      "u1",
		CartItems:   []domain.CartItemRequest{{Name: "Tea", Quantity: 3, Price: dec("0.333")}},
		TotalAmount: decPtr("1.00"),
	}
	_, err := h.svc.PlaceOrder(context.Background(), req, "")
	assert.NoError(t, err)
}

func TestPlaceOrderIdempotencyKey(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "key-1")
	require.NoError(t, err)

	_, err = h.svc.PlaceOrder(ctx, sampleOrder("u1"), "key-1")
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)
	assert.Len(t, h.repo.orders, 1)

	h.repo.createErr = errBoom
	_, err = h.svc.PlaceOrder(ctx, sampleOrder("u1"), "key-2")
	require.Error(t, err)
	assert.False(t, h.guard.claimed["key-2"], "a failed order releases its key")
}

func TestPlaceOrderPublishFailureIsIgnored(t *testing.T) {
	h := newHarness()
	h.publisher.err = errBoom

	res, err := h.svc.PlaceOrder(context.Background(), sampleOrder("u1"), "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.OrderID)
}

func TestGetOrderByID(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	placed, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)

	got, err := h.svc.GetOrderByID(ctx, placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, placed.OrderID, got.ID)
	assert.Len(t, got.Items, 2)

	_, err = h.svc.GetOrderByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderID)

	_, err = h.svc.GetOrderByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	placed, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)
	h.publisher.events = nil

	t.Run("invalid status writes nothing", func(t *testing.T) {
		_, err := h.svc.UpdateOrderStatus(ctx, placed.OrderID, "Burnt")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		_, err = h.svc.UpdateOrderStatus(ctx, placed.OrderID, "ready")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.Zero(t, h.repo.updates)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := h.svc.UpdateOrderStatus(ctx, "123", "Ready")
		assert.ErrorIs(t, err, domain.ErrInvalidOrderID)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := h.svc.UpdateOrderStatus(ctx, uuid.NewString(), "Ready")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("same status", func(t *testing.T) {
		res, err := h.svc.UpdateOrderStatus(ctx, placed.OrderID, "Placed")
		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.Zero(t, h.repo.updates)
		assert.Empty(t, h.publisher.events)
	})

	t.Run("transition", func(t *testing.T) {
		res, err := h.svc.UpdateOrderStatus(ctx, placed.OrderID, "Ready")
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, domain.OrderStatusReady, res.Status)

		require.Len(t, h.publisher.events, 1)
		e := h.publisher.events[0]
		assert.Equal(t, domain.EventOrderStatusChanged, e.Type)
		assert.Equal(t, domain.OrderStatusPlaced, e.PreviousStatus)
		assert.Equal(t, int64(1), e.DailyOrderNumber)
	})
}

func TestGetMyOrders(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	liveID := uuid.NewString()
	h.menu.items[liveID] = entities.MenuItem{Name: "Butter Chicken v2", ImageSrc: "/assets/indian/new.png"}

	req := domain.CreateOrderRequest{
		UserID: "u1",
		CartItems: []domain.CartItemRequest{
			{ID: "deleted-item", Name: "Gone Soup", Quantity: 1, Price: dec("10"), ImageSrc: "/assets/old.png"},
			{ID: liveID, Name: "Butter Chicken", Quantity: 2, Price: dec("5"), ImageSrc: "/assets/indian/old.png"},
			{ID: "no-image", Name: "Water", Quantity: 1, Price: dec("0")},
		},
		TotalAmount: decPtr("20"),
	}
	_, err := h.svc.PlaceOrder(ctx, req, "")
	require.NoError(t, err)
	h.clock = h.clock.Add(time.Minute)
	_, err = h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)
	_, err = h.svc.PlaceOrder(ctx, sampleOrder("someone-else"), "")
	require.NoError(t, err)

	orders, err := h.svc.GetMyOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].DailyOrderNumber, "newest first")

	items := orders[1].Items
	require.Len(t, items, 3)
	assert.Equal(t, "Gone Soup", items[0].Name)
	require.NotNil(t, items[0].ImageURL)
	assert.Equal(t, "/assets/old.png", *items[0].ImageURL)

	assert.Equal(t, "Butter Chicken v2", items[1].Name)
	require.NotNil(t, items[1].ImageURL)
	assert.Equal(t, "/assets/indian/new.png", *items[1].ImageURL)

	assert.Equal(t, "Water", items[2].Name)
	assert.Nil(t, items[2].ImageURL)
}

func TestGetMyOrdersMatchesUpperCaseItemIDs(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	liveID := uuid.NewString()
	h.menu.items[liveID] = entities.MenuItem{Name: "Kimchi Jjigae", ImageSrc: "/assets/korean/jjigae.png"}

	upper := strings.ToUpper(liveID)
	req := domain.CreateOrderRequest{
		UserID: "u1",
		CartItems: []domain.CartItemRequest{
			{ID: upper, Name: "Kimchi Stew", Quantity: 1, Price: dec("8")},
			{ID: liveID, Name: "Kimchi Stew", Quantity: 1, Price: dec("8")},
		},
		TotalAmount: decPtr("16"),
	}
	_, err := h.svc.PlaceOrder(ctx, req, "")
	require.NoError(t, err)

	orders, err := h.svc.GetMyOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	for _, item := range orders[0].Items {
		assert.Equal(t, "Kimchi Jjigae", item.Name)
		require.NotNil(t, item.ImageURL)
		assert.Equal(t, "/assets/korean/jjigae.png", *item.ImageURL)
	}
	assert.Equal(t, upper, orders[0].Items[0].ItemID)
	assert.Equal(t, []string{liveID}, distinctItemIDs([]entities.Order{{Items: []entities.OrderItem{
		{ItemID: upper}, {ItemID: liveID}, {ItemID: ""},
	}}}))
}

func TestGetMyOrdersLookupFailureKeepsSnapshots(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.menu.err = errBoom

	_, err := h.svc.PlaceOrder(ctx, sampleOrder("u1"), "")
	require.NoError(t, err)

	orders, err := h.svc.GetMyOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, []string{"A", "B"}, []string{orders[0].Items[0].Name, orders[0].Items[1].Name})
}

func TestGetMyOrdersRequiresUser(t *testing.T) {
	h := newHarness()
	_, err := h.svc.GetMyOrders(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingUserID)
}
