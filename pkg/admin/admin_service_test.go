package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"baratie/domain"
	"baratie/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminRepository struct {
	orders      []entities.Order
	employees   map[uuid.UUID]entities.User
	from, until time.Time
}

func (r *fakeAdminRepository) GetOrdersInWindow(_ context.Context, from, until time.Time) ([]entities.Order, error) {
	r.from, r.until = from, until
	res := make([]entities.Order, 0)
	for _, o := range r.orders {
		if !o.OrderDate.Before(from) && o.OrderDate.Before(until) {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r *fakeAdminRepository) GetEmployeesByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.User, error) {
	res := map[uuid.UUID]entities.User{}
	for _, id := range ids {
		if e, ok := r.employees[id]; ok {
			res[id] = e
		}
	}
	return res, nil
}

func item(name string, qty int) entities.OrderItem {
	return entities.OrderItem{Name: name, Quantity: qty, Price: decimal.NewFromInt(1)}
}

func TestDayWindow(t *testing.T) {
	from, until, err := DayWindow("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), until)

	_, _, err = DayWindow("")
	assert.ErrorIs(t, err, domain.ErrDateRequired)
	_, _, err = DayWindow("01/05/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetOverview(t *testing.T) {
	employeeID := uuid.New()
	first := entities.Order{
		ID:          uuid.New(),
		UserID:      employeeID.String(),
		TotalAmount: decimal.RequireFromString("250"),
		OrderStatus: domain.OrderStatusPlaced,
		OrderDate:   time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Items:       []entities.OrderItem{item("A", 2), item("B", 1)},
	}
	second := entities.Order{
		ID:          uuid.New(),
		UserID:      "guest-42",
		TotalAmount: decimal.RequireFromString("99.99"),
		OrderDate:   time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC),
		Items:       []entities.OrderItem{item("A", 1), item("", 5)},
	}
	nextDay := entities.Order{
		ID:          uuid.New(),
		UserID:      "u",
		TotalAmount: decimal.RequireFromString("1000"),
		OrderDate:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	repo := &fakeAdminRepository{
		orders: []entities.Order{first, second, nextDay},
		employees: map[uuid.UUID]entities.User{
			employeeID: {ID: employeeID, Name: "Patty", Email: "patty@baratie.sea"},
		},
	}
	svc := NewAdminService(repo)

	res, err := svc.GetOverview(context.Background(), "2024-05-01")
	require.NoError(t, err)

	assert.Equal(t, "349.99", res.TotalRevenue.StringFixed(2))
	assert.Equal(t, 2, res.TotalOrders)
	assert.Equal(t, []domain.TopSoldItem{
		{ID: "A", Label: "A", Value: 3},
		{ID: "B", Label: "B", Value: 1},
	}, res.TopSoldItems)

	require.Len(t, res.DetailedOrders, 2)
	assert.Equal(t, second.ID.String(), res.DetailedOrders[0].OrderID, "newest first")
	assert.Equal(t, domain.NotAvailable, res.DetailedOrders[0].EmployeeName)
	assert.Equal(t, domain.NotAvailable, res.DetailedOrders[0].EmployeeEmail)
	assert.Equal(t, domain.UnknownStatus, res.DetailedOrders[0].Status)
	assert.Equal(t, "Patty", res.DetailedOrders[1].EmployeeName)
	assert.Equal(t, "patty@baratie.sea", res.DetailedOrders[1].EmployeeEmail)
	assert.Equal(t, "Placed", res.DetailedOrders[1].Status)
}

func TestGetOverviewCountsSubMillisecondEndOfDay(t *testing.T) {
	late := entities.Order{
		ID:          uuid.New(),
		UserID:      "u",
		TotalAmount: decimal.NewFromInt(10),
		OrderDate:   time.Date(2024, 5, 1, 23, 59, 59, 999_500_000, time.UTC),
	}
	midnight := entities.Order{
		ID:          uuid.New(),
		UserID:      "u",
		TotalAmount: decimal.NewFromInt(7),
		OrderDate:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	repo := &fakeAdminRepository{orders: []entities.Order{late, midnight}}
	svc := NewAdminService(repo)

	first, err := svc.GetOverview(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalOrders)
	assert.Equal(t, "10.00", first.TotalRevenue.StringFixed(2))

	second, err := svc.GetOverview(context.Background(), "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalOrders)
	assert.Equal(t, "7.00", second.TotalRevenue.StringFixed(2))
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), repo.until)
}

func TestGetOverviewEmptyDay(t *testing.T) {
	svc := NewAdminService(&fakeAdminRepository{})

	res, err := svc.GetOverview(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.True(t, res.TotalRevenue.IsZero())
	assert.Zero(t, res.TotalOrders)
	assert.Empty(t, res.TopSoldItems)
	assert.Empty(t, res.DetailedOrders)
}

func TestGetOverviewRejectsDates(t *testing.T) {
	svc := NewAdminService(&fakeAdminRepository{})

	_, err := svc.GetOverview(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrDateRequired)
	_, err = svc.GetOverview(context.Background(), "yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestTopSoldItemsLimitAndTies(t *testing.T) {
	order := entities.Order{ID: uuid.New(), TotalAmount: decimal.Zero}
	for i := 0; i < 10; i++ {
		order.Items = append(order.Items, item(fmt.Sprintf("dish-%02d", i), 5))
	}
	order.Items = append(order.Items, item("dish-09", 1))

	sum := summarize([]entities.Order{order, order})
	assert.Equal(t, 1, sum.orders, "repeated rows count once")

	top := topSoldItems(sum.items, domain.TopSoldItemsLimit)
	require.Len(t, top, 7)
	assert.Equal(t, "dish-09", top[0].Label)
	assert.Equal(t, 6, top[0].Value)
	assert.Equal(t, "dish-00", top[1].Label)
	assert.Equal(t, "dish-05", top[6].Label)
}

func TestGetDashboardData(t *testing.T) {
	repo := &fakeAdminRepository{orders: []entities.Order{{
		ID:          uuid.New(),
		TotalAmount: decimal.RequireFromString("12.5"),
		OrderDate:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Items:       []entities.OrderItem{item("Naan", 4)},
	}}}
	svc := NewAdminService(repo)

	res, err := svc.GetDashboardData(context.Background(), "2024-05-01")
	require.NoError(t, err)
	require.Len(t, res.RevenueData, 1)
	assert.Equal(t, "2024-05-01", res.RevenueData[0].Data[0].X)
	assert.Equal(t, "12.50", res.RevenueData[0].Data[0].Y.StringFixed(2))
	assert.Equal(t, []domain.SoldItemQuantity{{Item: "Naan", Quantity: 4}}, res.MostSoldItemsData)
}
