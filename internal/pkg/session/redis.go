package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
)

// RedisStore is a Store implementation backed by Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

// Get resolves a session by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}

	sess.ID = id
	return &sess, nil
}

// Set writes the session with the given TTL. The KeepTTL path is
// update-only: SET with KEEPTTL on a missing key would recreate it without
// any expiry, so an absent record returns goerror.ErrNotFound instead.
func (s *RedisStore) Set(ctx context.Context, sess Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if ttl == KeepTTL {
		ok, err := s.client.SetXX(ctx, s.prefix+sess.ID, raw, redis.KeepTTL).Result()
		if err != nil {
			return err
		}
		if !ok {
			return goerror.ErrNotFound
		}
		return nil
	}

	return s.client.Set(ctx, s.prefix+sess.ID, raw, ttl).Err()
}

// Destroy removes the session.
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}
