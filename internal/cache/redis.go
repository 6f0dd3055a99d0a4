package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}

// Marker records one-off facts ("reminder sent for appointment 42") with an
// expiry, so that several instances do not act on the same thing twice.
type Marker struct {
	client *redis.Client
	prefix string
}

func NewMarker(client *redis.Client, prefix string) *Marker {
	return &Marker{client: client, prefix: prefix}
}

// Mark sets key if it is not set yet. It reports whether this call set it.
func (m *Marker) Mark(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return m.client.SetNX(ctx, m.prefix+key, time.Now().Unix(), ttl).Result()
}

// Unmark removes key, making it available to Mark again.
func (m *Marker) Unmark(ctx context.Context, key string) error {
	return m.client.Del(ctx, m.prefix+key).Err()
}
