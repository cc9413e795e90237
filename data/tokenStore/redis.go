package tokenStore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

// RedisTokenStore shares one token between hosts that have no durable disk.
type RedisTokenStore struct {
	redis *redis.Client
	key   string
}

func NewRedisTokenStore(redisClient *redis.Client, key string) *RedisTokenStore {
	return &RedisTokenStore{redis: redisClient, key: key}
}

func (s *RedisTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "RedisTokenStore.Load"

	res, err := s.redis.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", s.key))
		return nil, err
	}

	tok := &oauth2.Token{}
	if err = json.Unmarshal(res, tok); err != nil {
		slog.Error("can't unmarshall token", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, errors.New("can't unmarshall token")
	}

	return tok, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, tok *oauth2.Token) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "RedisTokenStore.Save"

	b, err := json.Marshal(tok)
	if err != nil {
		return errors.New("can't marshall token")
	}

	// no expiration: the refresh token outlives any access token expiry
	if err = s.redis.Set(ctx, s.key, b, 0).Err(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", s.key))
		return err
	}

	slog.Debug("token saved", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", s.key))

	return nil
}
