package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects to Redis at addr. The cache is optional: if the
// connection fails the client stays nil and every helper degrades to a miss.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		Client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// Close closes the Redis connection if one was established.
func Close() {
	if Client != nil {
		if err := Client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
		Client = nil
	}
}

// GetJSON reads key and unmarshals it into dest. It reports whether dest
// was populated; any Redis or decode error counts as a miss.
func GetJSON(ctx context.Context, key string, dest any) bool {
	if Client == nil {
		return false
	}
	s, err := Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("Redis get error for %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false
	}
	return true
}

// SetJSON marshals v and stores it under key with the given TTL. Best effort.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if Client == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := Client.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Printf("Redis set error for %s: %v", key, err)
	}
}
