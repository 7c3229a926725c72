// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"calendar_backend/internal/feature/tasks/domain/entity"
	"calendar_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads of the whole task list and of
// per-user lists are cached; any mutation invalidates every cached list,
// since a task's owner is unknown at update/delete time.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingTaskRepository implements TaskRepository.
var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tasks".
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// allKey is the cache key for the whole task list.
func (c *CachingTaskRepository) allKey() string {
	return c.namespace + ":all"
}

// userKey is the cache key for one user's task list.
func (c *CachingTaskRepository) userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}

// Create inserts a task and invalidates the cached lists.
func (c *CachingTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := c.inner.Create(ctx, task); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ListAll retrieves every task, checking the cache first then falling back to the database.
func (c *CachingTaskRepository) ListAll(ctx context.Context) ([]entity.Task, error) {
	return c.cachedList(ctx, c.allKey(), func() ([]entity.Task, error) {
		return c.inner.ListAll(ctx)
	})
}

// ListByUser retrieves a user's tasks, checking the cache first then falling back to the database.
func (c *CachingTaskRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	return c.cachedList(ctx, c.userKey(userID), func() ([]entity.Task, error) {
		return c.inner.ListByUser(ctx, userID)
	})
}

// Update overwrites a task and invalidates the cached lists when a row changed.
func (c *CachingTaskRepository) Update(ctx context.Context, id uint, content, date string) (bool, error) {
	changed, err := c.inner.Update(ctx, id, content, date)
	if err != nil {
		return false, err
	}
	if changed {
		c.invalidate(ctx)
	}
	return changed, nil
}

// Delete removes a task and invalidates the cached lists when a row was removed.
func (c *CachingTaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	removed, err := c.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		c.invalidate(ctx)
	}
	return removed, nil
}

// cachedList serves a task list from Redis when possible, repopulating the
// cache on a miss. The cache is bypassed entirely when Redis is not configured.
func (c *CachingTaskRepository) cachedList(ctx context.Context, key string, fetch func() ([]entity.Task, error)) ([]entity.Task, error) {
	if c.rdb == nil {
		return fetch()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := fetch()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops every cached task list. Best effort: a failed delete only
// means a stale entry lives until its TTL.
func (c *CachingTaskRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.allKey()).Err()
	_ = c.deleteByPattern(ctx, c.namespace+":user:*")
}

// deleteByPattern removes all keys matching the given pattern using SCAN.
func (c *CachingTaskRepository) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
