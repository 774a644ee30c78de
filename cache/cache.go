// Package cache is a small read-through cache in front of the product
// listing. It is optional: with no REDIS_ADDR configured every call is a
// miss and the handlers hit Postgres directly.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const listingTTL = 60 * time.Second

type Cache struct {
	client *redis.Client
}

// New connects to Redis when REDIS_ADDR is set; otherwise it returns a
// disabled cache that never hits.
func New() *Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, listing cache disabled: %v", err)
		return &Cache{}
	}
	log.Printf("✅ Listing cache connected to %s", addr)
	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get unmarshals a cached value into dest and reports whether it was found.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Set stores a value under the listing TTL. Failures are ignored: the
// cache is an optimization, never a source of truth.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, listingTTL)
}

// InvalidateListings drops every cached product listing. Called after any
// admin write to the catalog.
func (c *Cache) InvalidateListings(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	iter := c.client.Scan(ctx, 0, "products:*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
