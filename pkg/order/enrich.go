package order

import (
	"baratie/domain"
	"baratie/entities"

	"github.com/google/uuid"
)

// liveItemKey returns the canonical form menu lookups are keyed by. Snapshot ids keep whatever
// casing the client sent.
func liveItemKey(itemID string) string {
	if parsed, err := uuid.Parse(itemID); err == nil {
		return parsed.String()
	}
	return itemID
}

func distinctItemIDs(orders []entities.Order) []string {
	seen := map[string]struct{}{}
	ids := make([]string, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if item.ItemID == "" {
				continue
			}
			key := liveItemKey(item.ItemID)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			ids = append(ids, key)
		}
	}
	return ids
}

func toOrderResponse(order entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderItemResponse{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageSrc: item.ImageSrc,
			Category: item.Category,
		})
	}
	return domain.OrderResponse{
		ID:               order.ID.String(),
		UserID:           order.UserID,
		DailyOrderNumber: order.DailyOrderNumber,
		Items:            items,
		TotalAmount:      order.TotalAmount,
		OrderStatus:      order.OrderStatus,
		OrderDate:        order.OrderDate,
	}
}

// enrichOrders overlays live menu names and images on the order snapshots. Items whose menu
// entry is gone keep their snapshot values.
func enrichOrders(orders []entities.Order, live map[string]entities.MenuItem) []domain.OrderResponse {
	res := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out := toOrderResponse(order)
		for i := range out.Items {
			item := &out.Items[i]
			image := item.ImageSrc
			if current, ok := live[liveItemKey(item.ItemID)]; ok {
				if current.Name != "" {
					item.Name = current.Name
				}
				if current.ImageSrc != "" {
					image = current.ImageSrc
				}
			}
			if image != "" {
				imageURL := image
				item.ImageURL = &imageURL
			}
		}
		res = append(res, out)
	}
	return res
}
