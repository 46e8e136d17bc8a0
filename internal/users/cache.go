package users

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const userKeyPrefix = "user:" // Key for a cached user record: user:{user_id}

// Cache keeps user records in Redis as JSON documents with a TTL. It backs
// the admin gate's per-request user lookup; login refreshes the entry.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, id string) (*User, error) {
	data, err := c.client.Get(ctx, c.userKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var u User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("cache unmarshal: %w", err)
	}
	return &u, nil
}

func (c *Cache) Set(ctx context.Context, u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.userKey(u.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.userKey(id)).Err()
}

func (c *Cache) userKey(id string) string {
	return fmt.Sprintf("%s%s", userKeyPrefix, id)
}

// CachedReader reads through the cache into the underlying store. Cache
// failures degrade to direct store reads.
type CachedReader struct {
	cache *Cache
	next  Reader
}

func NewCachedReader(cache *Cache, next Reader) *CachedReader {
	return &CachedReader{cache: cache, next: next}
}

func (r *CachedReader) GetByID(ctx context.Context, id string) (*User, error) {
	if u, err := r.cache.Get(ctx, id); err == nil && u != nil {
		return u, nil
	}

	u, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Set(ctx, u)
	return u, nil
}
