package admin

import (
	"sort"
	"strings"
	"time"

	"baratie/domain"
	"baratie/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DayWindow returns the half-open UTC window [00:00 of date, 00:00 of the next day).
func DayWindow(date string) (time.Time, time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, time.Time{}, domain.ErrDateRequired
	}
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}
	return day, day.AddDate(0, 0, 1), nil
}

type summary struct {
	revenue decimal.Decimal
	orders  int
	items   []domain.SoldItemQuantity
}

// summarize totals revenue over distinct orders and quantities per item name. items is sorted
// by quantity descending, then name ascending.
func summarize(orders []entities.Order) summary {
	seen := make(map[uuid.UUID]struct{}, len(orders))
	revenue := decimal.Zero
	quantities := map[string]int{}

	for _, order := range orders {
		if _, ok := seen[order.ID]; ok {
			continue
		}
		seen[order.ID] = struct{}{}
		revenue = revenue.Add(order.TotalAmount)

		for _, item := range order.Items {
			if item.Name == "" {
				continue
			}
			quantities[item.Name] += item.Quantity
		}
	}

	items := make([]domain.SoldItemQuantity, 0, len(quantities))
	for name, qty := range quantities {
		items = append(items, domain.SoldItemQuantity{Item: name, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Item < items[j].Item
	})

	return summary{revenue: revenue, orders: len(seen), items: items}
}

func topSoldItems(items []domain.SoldItemQuantity, limit int) []domain.TopSoldItem {
	if len(items) > limit {
		items = items[:limit]
	}
	top := make([]domain.TopSoldItem, 0, len(items))
	for _, item := range items {
		top = append(top, domain.TopSoldItem{ID: item.Item, Label: item.Item, Value: item.Quantity})
	}
	return top
}

func employeeIDs(orders []entities.Order) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{}
	ids := make([]uuid.UUID, 0)
	for _, order := range orders {
		id, err := uuid.Parse(order.UserID)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func detailedOrders(orders []entities.Order, employees map[uuid.UUID]entities.User) []domain.DetailedOrder {
	details := make([]domain.DetailedOrder, 0, len(orders))
	for _, order := range orders {
		detail := domain.DetailedOrder{
			OrderID:       order.ID.String(),
			EmployeeName:  domain.NotAvailable,
			EmployeeEmail: domain.NotAvailable,
			OrderDate:     order.OrderDate,
			TotalAmount:   order.TotalAmount,
			Status:        string(order.OrderStatus),
		}
		if id, err := uuid.Parse(order.UserID); err == nil {
			if employee, ok := employees[id]; ok {
				detail.EmployeeName = employee.Name
				detail.EmployeeEmail = employee.Email
			}
		}
		if detail.Status == "" {
			detail.Status = domain.UnknownStatus
		}
		details = append(details, detail)
	}
	sort.SliceStable(details, func(i, j int) bool { return details[i].OrderDate.After(details[j].OrderDate) })
	return details
}
