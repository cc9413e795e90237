package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/redis/go-redis/v9"
)

const (
	defaultConnAttempts = 5
	connTimeout         = time.Second
)

// NewRedisClient retries the first ping a few times, redis often starts
// together with the service.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	var err error
	for attempt := defaultConnAttempts; attempt > 0; attempt-- {
		err = rdb.Ping(ctx).Err()
		if err == nil {
			break
		}

		slog.Info("Redis is trying to connect", slog.Int("attempts left", attempt-1), slog.String("err", err.Error()))

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(connTimeout):
		}
	}

	if err != nil {
		slog.Error("Error while connecting Redis", slog.String("err", err.Error()))
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connected", slog.String("addr", rdb.Options().Addr))

	return rdb, nil
}
