package store

import (
	"context"
	"sync"
	"time"
)

type memoryLease struct {
	owner uint64
	until time.Time
}

// MemoryLocker is a Locker for a single process.
type MemoryLocker struct {
	mu     sync.Mutex
	leases map[string]memoryLease
	seq    uint64
}

type memoryLock struct {
	locker *MemoryLocker
	key    string
	owner  uint64
}

func (l *memoryLock) Release(ctx context.Context) error {
	l.locker.mu.Lock()
	defer l.locker.mu.Unlock()
	// the lease may have expired and been taken by someone else
	if lease, ok := l.locker.leases[l.key]; ok && lease.owner == l.owner {
		delete(l.locker.leases, l.key)
	}
	return nil
}

func (l *MemoryLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if lease, ok := l.leases[key]; ok && now.Before(lease.until) {
		return nil, ErrLocked
	}
	l.seq++
	l.leases[key] = memoryLease{owner: l.seq, until: now.Add(ttl)}
	return &memoryLock{locker: l, key: key, owner: l.seq}, nil
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		leases: make(map[string]memoryLease),
	}
}
