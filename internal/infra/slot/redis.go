package slot

import (
	"context"
	"errors"
	"log/slog"

	"restaurant-reservations/internal/infra"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "slot:"

type RedisSlot struct {
	logger *slog.Logger
	client redis.Cmdable
}

func NewRedisSlot(logger *slog.Logger, client redis.Cmdable) *RedisSlot {
	return &RedisSlot{logger: logger, client: client}
}

func (s *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapSlotErr(s.logger, infra.KindNotFound, "slot "+key+" is empty", nil)
	}
	if err != nil {
		return nil, infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "redis get", err)
	}
	return blob, nil
}

func (s *RedisSlot) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, blob, 0).Err(); err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "redis set", err)
	}
	return nil
}
