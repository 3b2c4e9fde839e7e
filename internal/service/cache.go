package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
	"github.com/kaan-t/go-fin-ledger/internal/repository"
)

// cacheServiceImpl provides Redis-backed caching for the ledger API.
type cacheServiceImpl struct {
	redisClient *repository.RedisClient
}

// NewCacheService creates a new cache service.
func NewCacheService(redisClient *repository.RedisClient) CacheService {
	return &cacheServiceImpl{
		redisClient: redisClient,
	}
}

const (
	userCachePrefix = "user:"
	userCacheTTL    = 30 * time.Minute

	// Statements never change after creation, so a long TTL is safe.
	statementCachePrefix = "statement:"
	statementCacheTTL    = 12 * time.Hour

	rateLimitPrefix = "ratelimit:"
)

// CacheUser caches user information.
func (c *cacheServiceImpl) CacheUser(ctx context.Context, user *domain.User) error {
	key := userCachePrefix + user.ID.String()
	return c.redisClient.Set(ctx, key, user.ToResponse(), userCacheTTL)
}

// GetCachedUser retrieves a cached user.
func (c *cacheServiceImpl) GetCachedUser(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	key := userCachePrefix + userID.String()
	var user domain.UserResponse
	if err := c.redisClient.Get(ctx, key, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// InvalidateUserCache removes a user from cache.
func (c *cacheServiceImpl) InvalidateUserCache(ctx context.Context, userID uuid.UUID) error {
	key := userCachePrefix + userID.String()
	return c.redisClient.Del(ctx, key)
}

// statementKey scopes cached statements by owner, so a lookup with the wrong
// user never hits someone else's entry.
func statementKey(userID, statementID uuid.UUID) string {
	return statementCachePrefix + userID.String() + ":" + statementID.String()
}

// CacheStatement caches a single statement.
func (c *cacheServiceImpl) CacheStatement(ctx context.Context, stmt *domain.Statement) error {
	return c.redisClient.Set(ctx, statementKey(stmt.UserID, stmt.ID), stmt.ToResponse(), statementCacheTTL)
}

// GetCachedStatement retrieves a cached statement.
func (c *cacheServiceImpl) GetCachedStatement(ctx context.Context, userID, statementID uuid.UUID) (*domain.StatementResponse, error) {
	var stmt domain.StatementResponse
	if err := c.redisClient.Get(ctx, statementKey(userID, statementID), &stmt); err != nil {
		return nil, err
	}
	return &stmt, nil
}

// CheckRateLimit returns whether the client is within its request budget for
// the current window.
func (c *cacheServiceImpl) CheckRateLimit(ctx context.Context, clientIP string, maxRequests int, window time.Duration) (bool, error) {
	key := rateLimitPrefix + clientIP
	count, err := c.redisClient.Incr(ctx, key, window)
	if err != nil {
		return false, err
	}
	return count <= int64(maxRequests), nil
}

// Health checks Redis connectivity.
func (c *cacheServiceImpl) Health(ctx context.Context) error {
	return c.redisClient.Ping(ctx)
}
