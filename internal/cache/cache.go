package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache é um wrapper fino sobre o Redis. Sem REDIS_ADDR o cache
// fica desligado e todas as operações viram no-op.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		log.Println("REDIS_ADDR not set, cache disabled")
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("failed to connect redis: %v, cache disabled", err)
		return &Cache{}
	}

	log.Println("Connected to redis")
	return &Cache{rdb: rdb}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON carrega e desserializa uma chave. Retorna false em cache
// miss ou erro; quem chama trata miss e erro do mesmo jeito.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(data), dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}

	data, err := json.Marshal(val)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del: %v", err)
	}
}
