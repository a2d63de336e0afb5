package order

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"baratie/domain"
	"baratie/entities"
	"baratie/pkg/counter"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeCounters struct {
	values map[string]int64
	fail   error
}

func (c *fakeCounters) NextValue(_ context.Context, name string, day time.Time) (int64, error) {
	if c.fail != nil {
		return 0, c.fail
	}
	key := counter.SequenceKey(name, day)
	c.values[key]++
	return c.values[key], nil
}

func (c *fakeCounters) WithTx(*gorm.DB) counter.CounterRepository { return c }

// fakeOrderRepository keeps everything in memory and restores its state when a transaction
// callback fails.
type fakeOrderRepository struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]entities.Order
	counters   *fakeCounters
	createErr  error
	updates    int
	insertions int
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{
		orders:   map[uuid.UUID]entities.Order{},
		counters: &fakeCounters{values: map[string]int64{}},
	}
}

func (r *fakeOrderRepository) WithinTransaction(ctx context.Context, fn func(OrderRepository, counter.CounterRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	savedCounters := map[string]int64{}
	for k, v := range r.counters.values {
		savedCounters[k] = v
	}
	savedOrders := map[uuid.UUID]entities.Order{}
	for k, v := range r.orders {
		savedOrders[k] = v
	}

	if err := fn(r, r.counters); err != nil {
		r.counters.values = savedCounters
		r.orders = savedOrders
		return err
	}
	return nil
}

func (r *fakeOrderRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.insertions++
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepository) GetOrderByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &order, nil
}

func (r *fakeOrderRepository) sorted(filter func(entities.Order) bool) []entities.Order {
	res := make([]entities.Order, 0)
	for _, o := range r.orders {
		if filter(o) {
			res = append(res, o)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].OrderDate.After(res[j].OrderDate) })
	return res
}

func (r *fakeOrderRepository) GetOrdersByUserID(_ context.Context, userID string) ([]entities.Order, error) {
	return r.sorted(func(o entities.Order) bool { return o.UserID == userID }), nil
}

func (r *fakeOrderRepository) GetAllOrders(context.Context) ([]entities.Order, error) {
	return r.sorted(func(entities.Order) bool { return true }), nil
}

func (r *fakeOrderRepository) UpdateOrderStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.updates++
	order.OrderStatus = status
	r.orders[id] = order
	return nil
}

type fakeMenu struct {
	items map[string]entities.MenuItem
	err   error
}

func (m *fakeMenu) FindItemsByIDs(_ context.Context, ids []string) (map[string]entities.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	res := map[string]entities.MenuItem{}
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			res[id] = item
		}
	}
	return res, nil
}

type fakeGuard struct {
	claimed map[string]bool
}

func (g *fakeGuard) Claim(_ context.Context, key string) (bool, error) {
	if g.claimed[key] {
		return false, nil
	}
	g.claimed[key] = true
	return true, nil
}

func (g *fakeGuard) Release(_ context.Context, key string) error {
	delete(g.claimed, key)
	return nil
}

type recordingPublisher struct {
	events []domain.OrderEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.OrderEvent) error {
	p.events = append(p.events, e)
	return p.err
}

var errBoom = errors.New("boom")
