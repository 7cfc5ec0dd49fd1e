package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLocker is a Locker shared by every replica connected to the same redis.
type RedisLocker struct {
	rs        *redsync.Redsync
	keyPrefix string
}

type redisLock struct {
	mutex *redsync.Mutex
}

func (l *redisLock) Release(ctx context.Context) error {
	_, err := l.mutex.UnlockContext(ctx)
	return err
}

func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	mutex := l.rs.NewMutex(l.keyPrefix+key, redsync.WithExpiry(ttl), redsync.WithTries(1))
	if err := mutex.TryLockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return nil, ErrLocked
		}
		return nil, err
	}
	return &redisLock{mutex: mutex}, nil
}

func NewRedisLocker(rdb redis.UniversalClient, keyPrefix string) *RedisLocker {
	return &RedisLocker{
		rs:        redsync.New(goredis.NewPool(rdb)),
		keyPrefix: keyPrefix,
	}
}
