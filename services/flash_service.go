package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"contacts-http-service/config"
)

// Flash message kinds
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// flashTTL bounds how long an unread flash message survives. A message set
// before a redirect is normally read on the very next request.
const flashTTL = 15 * time.Minute

// InterfaceFlashService is a one-shot message store keyed by session ID.
// Pop returns the message at most once; a second Pop for the same key
// returns the empty string.
type InterfaceFlashService interface {
	Set(sessionID, kind, message string) error
	Pop(sessionID, kind string) (string, error)
}

// RedisFlashService stores flash messages in Redis with a TTL
type RedisFlashService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisFlashService creates a Redis-backed flash service
func NewRedisFlashService(cfg *config.Config) *RedisFlashService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisFlashService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// NewRedisFlashServiceWithClient wraps an existing Redis client
func NewRedisFlashServiceWithClient(client *redis.Client) *RedisFlashService {
	return &RedisFlashService{
		Client: client,
		Ctx:    context.Background(),
	}
}

func flashKey(sessionID, kind string) string {
	return "flash:" + sessionID + ":" + kind
}

// Set stores a flash message for the session
func (s *RedisFlashService) Set(sessionID, kind, message string) error {
	return s.Client.Set(s.Ctx, flashKey(sessionID, kind), message, flashTTL).Err()
}

// Pop reads and deletes a flash message for the session
func (s *RedisFlashService) Pop(sessionID, kind string) (string, error) {
	key := flashKey(sessionID, kind)
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if err := s.Client.Del(s.Ctx, key).Err(); err != nil {
		return "", err
	}
	return val, nil
}

// memoryFlashEntry is one stored message with its expiration
type memoryFlashEntry struct {
	Message    string
	Expiration time.Time
}

// MemoryFlashService is an in-process flash store used when Redis is
// disabled, and by the test suite
type MemoryFlashService struct {
	mu    sync.Mutex
	items map[string]memoryFlashEntry
}

// NewMemoryFlashService creates an in-memory flash service
func NewMemoryFlashService() *MemoryFlashService {
	return &MemoryFlashService{
		items: make(map[string]memoryFlashEntry),
	}
}

// Set stores a flash message for the session
func (s *MemoryFlashService) Set(sessionID, kind, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanExpired()
	s.items[flashKey(sessionID, kind)] = memoryFlashEntry{
		Message:    message,
		Expiration: time.Now().Add(flashTTL),
	}
	return nil
}

// Pop reads and deletes a flash message for the session
func (s *MemoryFlashService) Pop(sessionID, kind string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := flashKey(sessionID, kind)
	entry, found := s.items[key]
	if !found {
		return "", nil
	}
	delete(s.items, key)
	if entry.Expiration.Before(time.Now()) {
		return "", nil
	}
	return entry.Message, nil
}

// cleanExpired drops expired entries; callers must hold the lock
func (s *MemoryFlashService) cleanExpired() {
	now := time.Now()
	for key, entry := range s.items {
		if entry.Expiration.Before(now) {
			delete(s.items, key)
		}
	}
}
