package data

import (
	"github.com/go-redis/redis/v8"

	"github.com/keksobooking/api/internal/config"
)

// NewRedisClient creates and returns a new Redis client using environment variables.
func NewRedisClient() *redis.Client {
	addr := config.Conf.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}
