package store

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/params"
)

// ClientStorage keeps the local storage of every client in one shared storage.
type ClientStorage struct {
	storage *KVStorage
	maxAge  time.Duration
}

// For returns the local storage of the client identified by clientID.
func (s *ClientStorage) For(clientID string) LocalStorage {
	return &clientItems{
		kv:     s.storage.Sub(clientID + ":"),
		maxAge: s.maxAge,
	}
}

type clientItems struct {
	kv     *KVStorage
	maxAge time.Duration
}

func (c *clientItems) GetItem(key string) (string, error) {
	val, err := c.kv.Get(key)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", ErrNotFound
	}
	return string(val), nil
}

func (c *clientItems) SetItem(key string, value string) error {
	return c.kv.Set(key, []byte(value), c.maxAge)
}

func (c *clientItems) RemoveItem(key string) error {
	return c.kv.Delete(key)
}

func NewClientStorage(storage fiber.Storage, maxAge time.Duration) *ClientStorage {
	if maxAge <= 0 {
		maxAge = params.LocalStorageMaxAge
	}
	return &ClientStorage{
		storage: NewKVStorage(storage, params.LocalStorageKeyPrefix),
		maxAge:  maxAge,
	}
}
