package database

import (
	"context"
	"fmt"
	"halo-optom-service/internal/app/config"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient backs sessions and the expiry sweep leader lock.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		PoolSize:     driverConfig.Redis.PoolSize,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}

	log.Printf("Successfully connected to redis db %d", driverConfig.Redis.DB)
	return rdb
}
