package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReadCache é o memo de leituras idempotentes do gateway. A única
// invalidação é o TTL: uma escrita por outro caminho pode deixar a
// entrada velha até a janela vencer.
type ReadCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
}

type memoryEntry struct {
	val     []byte
	fetched time.Time
}

// MemoryCache guarda respostas em memória com janela de frescor fixa
type MemoryCache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	m   map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl: ttl,
		now: time.Now,
		m:   make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetched) >= c.ttl {
		delete(c.m, key)
		return nil, false
	}
	return e.val, true
}

func (c *MemoryCache) Set(_ context.Context, key string, val []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = memoryEntry{val: val, fetched: c.now()}
}

// RedisCache é a variante compartilhável do memo, para quando mais de uma
// instância do painel aponta pro mesmo servidor
type RedisCache struct {
	R   *redis.Client
	TTL time.Duration
}

func NewRedisCache(r *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{R: r, TTL: ttl}
}

func keyRead(path string) string { return "torneo:read:" + path }

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.R.Get(ctx, keyRead(key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte) {
	_ = c.R.Set(ctx, keyRead(key), val, c.TTL).Err()
}
