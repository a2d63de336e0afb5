package events

import (
	"context"
	"errors"

	"baratie/domain"
)

var ErrBusFull = errors.New("event bus is full")

type (
	Publisher interface {
		Publish(ctx context.Context, event domain.OrderEvent) error
	}

	Handler func(ctx context.Context, event domain.OrderEvent) error

	// Subscriber blocks delivering events to handler until ctx is cancelled.
	Subscriber interface {
		Subscribe(ctx context.Context, handler Handler) error
	}

	Bus interface {
		Publisher
		Subscriber
	}
)
