package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisClient *redis.Client

// NewRedis returns a client backed by a shared miniredis instance.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis drops all cached entries.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
