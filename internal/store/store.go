package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
	ErrLocked   = errors.New("already locked")
)

// LocalStorage is a per-client string key-value store, the server side
// counterpart of the browser's local storage.
type LocalStorage interface {
	GetItem(key string) (string, error)
	SetItem(key string, value string) error
	RemoveItem(key string) error
}

// Lock is a held lock returned by Locker.TryLock.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out exclusive, expiring locks by key. TryLock never waits, it
// returns ErrLocked when the key is already held.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}
