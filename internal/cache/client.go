package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/Hari569/habit-tracker/config"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
