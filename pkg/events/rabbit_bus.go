package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"baratie/domain"
	"baratie/internal/utils"
	"baratie/internal/utils/broker"

	"github.com/rs/zerolog"
)

const publishTimeout = 5 * time.Second

type rabbitBus struct {
	client   *broker.Client
	consumer string
	logger   zerolog.Logger
}

func NewRabbitBus(client *broker.Client, consumer string) Bus {
	return &rabbitBus{
		client:   client,
		consumer: consumer,
		logger:   utils.NewLogger("events"),
	}
}

func (b *rabbitBus) Publish(ctx context.Context, event domain.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return b.client.PublishPersistent(ctx, broker.OrdersExchange, event.Type, body)
}

func (b *rabbitBus) Subscribe(ctx context.Context, handler Handler) error {
	deliveries, err := b.client.Consume(broker.NotificationsQueue, b.consumer, 10)
	if err != nil {
		return fmt.Errorf("consume %s: %w", broker.NotificationsQueue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("notification delivery channel closed")
			}
			var event domain.OrderEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				b.logger.Error().Err(err).Msg("malformed event, dead-lettering")
				_ = d.Nack(false, false)
				continue
			}
			if err := handler(ctx, event); err != nil {
				b.logger.Error().Err(err).Str("order_id", event.OrderID).Msg("event handler failed, dead-lettering")
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
