package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/AnshRaj112/exercise-tracker/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "cache:"
	// DefaultCacheTTL bounds how stale a cached user listing can get
	DefaultCacheTTL = 5 * time.Minute
)

// UsersCache holds the user listing. Implementations must never fail a request:
// errors degrade to a miss.
type UsersCache interface {
	GetUsers(ctx context.Context) ([]models.UserSummary, bool)
	SetUsers(ctx context.Context, users []models.UserSummary)
	Invalidate(ctx context.Context)
}

type noCache struct{}

func (noCache) GetUsers(context.Context) ([]models.UserSummary, bool) { return nil, false }
func (noCache) SetUsers(context.Context, []models.UserSummary) {}
func (noCache) Invalidate(context.Context) {}

// RedisUsersCache stores the user listing as JSON in Redis.
type RedisUsersCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logrus.FieldLogger
}

func NewRedisUsersCache(client *redis.Client, ttl time.Duration, log logrus.FieldLogger) *RedisUsersCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisUsersCache{client: client, ttl: ttl, log: log}
}

// CacheKey generates a cache key for a specific resource
func CacheKey(resource string, identifier string) string {
	return CacheKeyPrefix + resource + ":" + identifier
}

var usersKey = CacheKey("users", "all")

func (c *RedisUsersCache) GetUsers(ctx context.Context) ([]models.UserSummary, bool) {
	val, err := c.client.Get(ctx, usersKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.WithError(err).Warn("users cache read failed")
		return nil, false
	}

	var users []models.UserSummary
	if err := json.Unmarshal(val, &users); err != nil {
		c.log.WithError(err).Warn("users cache entry is corrupt")
		return nil, false
	}
	return users, true
}

func (c *RedisUsersCache) SetUsers(ctx context.Context, users []models.UserSummary) {
	data, err := json.Marshal(users)
	if err != nil {
		c.log.WithError(err).Warn("users cache encode failed")
		return
	}
	if err := c.client.Set(ctx, usersKey, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("users cache write failed")
	}
}

func (c *RedisUsersCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, usersKey).Err(); err != nil {
		c.log.WithError(err).Warn("users cache invalidate failed")
	}
}
