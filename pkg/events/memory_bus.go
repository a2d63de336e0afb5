package events

import (
	"context"

	"baratie/domain"
	"baratie/internal/utils"

	"github.com/rs/zerolog"
)

type memoryBus struct {
	queue  chan domain.OrderEvent
	logger zerolog.Logger
}

// NewMemoryBus is used when no broker is configured. Events are buffered and dropped once the
// buffer is full.
func NewMemoryBus(size int) Bus {
	if size <= 0 {
		size = 256
	}
	return &memoryBus{
		queue:  make(chan domain.OrderEvent, size),
		logger: utils.NewLogger("events"),
	}
}

func (b *memoryBus) Publish(ctx context.Context, event domain.OrderEvent) error {
	select {
	case b.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBusFull
	}
}

func (b *memoryBus) Subscribe(ctx context.Context, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-b.queue:
			if err := handler(ctx, event); err != nil {
				b.logger.Error().Err(err).Str("type", event.Type).Str("order_id", event.OrderID).Msg("event handler failed")
			}
		}
	}
}
