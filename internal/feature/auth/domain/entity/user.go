// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered user in the system.
// It contains the credentials used for authentication.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's login handle.
	// It must be unique across all users.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
