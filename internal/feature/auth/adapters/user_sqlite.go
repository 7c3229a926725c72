// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"calendar_backend/internal/feature/auth/domain"
	"calendar_backend/internal/feature/auth/domain/entity"
	"calendar_backend/internal/feature/auth/usecase"
)

// userSQLite is a SQLite implementation of the UserRepository interface.
// It performs database operations through GORM.
type userSQLite struct {
	db *gorm.DB
}

// Compile-time check that userSQLite implements UserRepository.
var _ usecase.UserRepository = (*userSQLite)(nil)

// NewUserSQLite creates a new userSQLite instance with the given gorm.DB connection.
// Constructor for dependency injection.
func NewUserSQLite(db *gorm.DB) *userSQLite {
	return &userSQLite{db: db}
}

// Create inserts a user into the database.
// If a user with the same name already exists, it returns domain.ErrNameAlreadyExists.
func (r *userSQLite) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// SQLite extended code 2067: UNIQUE constraint violation
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrNameAlreadyExists
		}
		return err
	}
	return nil
}

// FindByName retrieves a user by login name.
// If the user does not exist, it returns domain.ErrUserNotFound.
func (r *userSQLite) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// If the user does not exist, it returns domain.ErrUserNotFound.
func (r *userSQLite) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
