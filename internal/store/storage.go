package store

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	fredis "github.com/gofiber/storage/redis/v3"
	"github.com/khanghh/authportal/params"
)

// NewStorage returns the shared storage and the submit locker. Without a redis
// URL both live in process memory.
func NewStorage(redisURL string) (fiber.Storage, Locker) {
	if redisURL == "" {
		return memory.New(memory.Config{GCInterval: 10 * time.Second}), NewMemoryLocker()
	}
	storage := fredis.New(fredis.Config{URL: redisURL})
	return storage, NewRedisLocker(storage.Conn(), params.SubmitLockKeyPrefix)
}
