package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	redispkg "github.com/yallashop/yallashop-backend/pkg/redis"
)

// Repository persists session carts. Find returns (nil, nil) when no cart
// exists for the token.
type Repository interface {
	Find(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, record *Cart) error
	Delete(ctx context.Context, token string) error
}

type cartStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(token string) string
}

type redisRepository struct {
	store cartStore
	ttl   time.Duration
}

// NewRedisRepository builds a repository storing carts as JSON in Redis.
// Every save refreshes the TTL, so active sessions never expire mid-shop.
func NewRedisRepository(store *redispkg.Client, ttl time.Duration) (Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &redisRepository{store: store, ttl: ttl}, nil
}

func (r *redisRepository) Find(ctx context.Context, token string) (*Cart, error) {
	payload, err := r.store.Get(ctx, r.store.CartKey(token))
	if err != nil {
		if errors.Is(err, redispkg.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var record Cart
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &record, nil
}

func (r *redisRepository) Save(ctx context.Context, record *Cart) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.store.Set(ctx, r.store.CartKey(record.Token), string(payload), r.ttl); err != nil {
		return fmt.Errorf("store cart: %w", err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, token string) error {
	if err := r.store.Del(ctx, r.store.CartKey(token)); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// MemoryRepository keeps carts in process memory. Used by tests and by local
// runs without a Redis target.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]string
}

// NewMemoryRepository builds an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string]string)}
}

func (r *MemoryRepository) Find(ctx context.Context, token string) (*Cart, error) {
	r.mu.RLock()
	payload, ok := r.carts[token]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var record Cart
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &record, nil
}

func (r *MemoryRepository) Save(ctx context.Context, record *Cart) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	r.mu.Lock()
	r.carts[record.Token] = string(payload)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	delete(r.carts, token)
	r.mu.Unlock()
	return nil
}
