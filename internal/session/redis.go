package session

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/cache"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps session bindings in Redis with a TTL, so sessions survive
// restarts and are visible to every instance sharing the Redis.
type RedisStore struct {
	cache *cache.Client
	ttl   time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store. Sessions expire after ttl.
func NewRedisStore(cache *cache.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: cache, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context, userID uint) (string, error) {
	token := uuid.New().String()
	key := sessionKeyPrefix + token
	value := []byte(strconv.FormatUint(uint64(userID), 10))
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return 0, false, err
	}
	if data == nil {
		return 0, false, nil
	}
	userID, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		// Corrupt entry; treat as no session.
		return 0, false, nil
	}
	return uint(userID), true, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
