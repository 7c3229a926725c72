// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	taskadapters "calendar_backend/internal/feature/tasks/adapters"
	"calendar_backend/internal/feature/tasks/usecase"
	"calendar_backend/internal/platform/cache"
)

// NewTaskRepository creates the task repository, wrapped in the Redis read
// cache. With a nil Redis client the decorator passes every call through,
// so callers never need to care whether caching is active.
func NewTaskRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.TaskRepository {
	base := taskadapters.NewTaskSQLite(db)
	return cache.NewCachingTaskRepository(rdb, ttl, base, "tasks")
}
