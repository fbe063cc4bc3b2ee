package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Abandoned carts expire on their own rather than accumulating forever.
const cartTTL = 30 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a cart store backed by Redis. Each session's cart is
// one key holding the JSON-serialized line array.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func cartKey(sessionID string) string { return "cart:" + sessionID }

func (s *redisStore) Load(ctx context.Context, sessionID string) ([]Line, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return decodeLines(data), nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
