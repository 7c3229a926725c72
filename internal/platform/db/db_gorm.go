// Package db opens the application's local SQLite database.
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "calendar_backend/internal/feature/auth/adapters"
	authentity "calendar_backend/internal/feature/auth/domain/entity"
	taskentity "calendar_backend/internal/feature/tasks/domain/entity"
)

// DefaultPath is the database file used when DB_PATH is not set.
const DefaultPath = "calendar.db"

// Config holds the database connection settings.
type Config struct {
	// Path is the SQLite database file. ":memory:" opens a throwaway in-memory store.
	Path string
}

// LoadConfigFromEnv reads the database configuration from environment variables.
func LoadConfigFromEnv() Config {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = DefaultPath
	}
	return Config{Path: path}
}

// BuildDSN renders the SQLite DSN for the given configuration.
//
// Write-ahead logging keeps reads concurrent with the single writer,
// foreign keys enforce the tasks -> users reference, and the busy timeout
// makes writers queue instead of failing immediately when the file is locked.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000", cfg.Path)
}

// Opener abstracts gorm.Open so tests can substitute a fake connection.
type Opener func(dsn string) (*gorm.DB, error)

// DefaultOpener opens a SQLite connection through GORM.
func DefaultOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// Open connects to the database described by cfg.
// A failure here means the store is unavailable: the caller must treat it
// as fatal rather than continuing without persistence.
func Open(cfg Config, opener Opener) (*gorm.DB, error) {
	if opener == nil {
		opener = DefaultOpener
	}
	db, err := opener(BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", cfg.Path, err)
	}
	return db, nil
}

// InitSchema idempotently creates the users, tasks and sessions tables.
// AutoMigrate is create-if-absent, so calling it on every startup is safe.
// Errors propagate to the caller; they are never logged and swallowed.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&taskentity.Task{},
		&authadapters.SessionModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
