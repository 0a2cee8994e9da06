package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
)

const (
	regularListKey     = "employees:regular"
	contractualListKey = "employees:contractual"
)

// EmployeeCache is a redis-backed read-through cache for employee listings.
// All methods are best-effort: a cache failure is logged and the caller falls
// back to the store. A nil cache is a valid no-op.
type EmployeeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewEmployeeCache builds the cache around an existing redis client.
func NewEmployeeCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *EmployeeCache {
	return &EmployeeCache{client: client, ttl: ttl, logger: logger}
}

// GetRegular returns the cached regular listing, if present.
func (c *EmployeeCache) GetRegular(ctx context.Context) ([]domain.RegularEmployee, bool) {
	var employees []domain.RegularEmployee
	if !c.get(ctx, regularListKey, &employees) {
		return nil, false
	}
	return employees, true
}

// SetRegular stores the regular listing.
func (c *EmployeeCache) SetRegular(ctx context.Context, employees []domain.RegularEmployee) {
	c.set(ctx, regularListKey, employees)
}

// GetContractual returns the cached contractual listing, if present.
func (c *EmployeeCache) GetContractual(ctx context.Context) ([]domain.ContractualEmployee, bool) {
	var employees []domain.ContractualEmployee
	if !c.get(ctx, contractualListKey, &employees) {
		return nil, false
	}
	return employees, true
}

// SetContractual stores the contractual listing.
func (c *EmployeeCache) SetContractual(ctx context.Context, employees []domain.ContractualEmployee) {
	c.set(ctx, contractualListKey, employees)
}

// Invalidate drops the listing for the given variant after a write.
func (c *EmployeeCache) Invalidate(ctx context.Context, variant domain.EmployeeType) {
	if c == nil || c.client == nil {
		return
	}
	key := regularListKey
	if variant == domain.EmployeeTypeContractual {
		key = contractualListKey
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *EmployeeCache) get(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		c.logger.Debug("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *EmployeeCache) set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
