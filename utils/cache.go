// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"pirouette/config"
)

var (
	// CacheClient is the generic cache client (class lists, studio summaries).
	CacheClient *redis.Client
	// SessionCacheClient is the dedicated client for pending schedule sessions.
	SessionCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSessionCache initializes the Redis client holding schedule batches parked for confirmation.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for pending schedule sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// ClassListCacheKey builds the cache key under which a studio's class list is stored.
func ClassListCacheKey(studioID string) string {
	return ClassListCachePrefix + studioID
}

// InvalidateClassList drops the cached class list for a studio so newly
// created or modified classes become visible on the next read.
func InvalidateClassList(ctx context.Context, studioID string) {
	if err := GetCacheClient().Del(ctx, ClassListCacheKey(studioID)).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to invalidate class list cache for studio %s: %v", studioID, err)
	}
}
