package config

import (
	"context"

	"baratie/pkg/notification"

	"gorm.io/gorm"
)

// RunNotificationConsumer turns order events into notifications until ctx is cancelled.
func RunNotificationConsumer(ctx context.Context, db *gorm.DB, infra *Infrastructure) error {
	service := NewNotificationService(notification.NewNotificationRepository(db))
	return infra.Bus.Subscribe(ctx, service.HandleOrderEvent)
}
