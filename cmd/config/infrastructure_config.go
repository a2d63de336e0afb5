package config

import (
	"context"
	"fmt"

	"baratie/internal/utils"
	"baratie/internal/utils/broker"
	"baratie/internal/utils/storage"
	"baratie/pkg/events"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Infrastructure holds the optional services around the database. The broker and Redis are
// only used when configured.
type Infrastructure struct {
	Images storage.ImageStorage
	Bus    events.Bus
	Redis  *redis.Client

	broker *broker.Client
	logger zerolog.Logger
}

func NewInfrastructure(ctx context.Context) (*Infrastructure, error) {
	infra := &Infrastructure{logger: utils.NewLogger("infrastructure")}

	images, err := storage.NewImageStorage(ctx)
	if err != nil {
		return nil, err
	}
	infra.Images = images

	if url := utils.GetConfig("RABBITMQ_URL"); url != "" {
		client, err := broker.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		if err := client.DeclareAll(); err != nil {
			client.Close()
			return nil, fmt.Errorf("declare rabbitmq topology: %w", err)
		}
		infra.broker = client
		infra.Bus = events.NewRabbitBus(client, "baratie-notifications")
		infra.logger.Info().Msg("order events go through rabbitmq")
	} else {
		infra.Bus = events.NewMemoryBus(256)
		infra.logger.Info().Msg("RABBITMQ_URL not set, order events stay in process")
	}

	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			infra.Close()
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		infra.Redis = rdb
	} else {
		infra.logger.Info().Msg("REDIS_ADDR not set, Idempotency-Key is ignored")
	}

	return infra, nil
}

func (i *Infrastructure) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	i.broker.Close()
}
