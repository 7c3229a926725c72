// Package entity defines the domain entities for the tasks feature.
package entity

import (
	authentity "calendar_backend/internal/feature/auth/domain/entity"
)

// DateLayout is the canonical storage format for task dates.
// Zero-padded ISO dates sort lexicographically in chronological order.
const DateLayout = "2006-01-02"

// Task represents a to-do item scheduled for a calendar date.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Content is the free-text task description. Never empty.
	Content string `gorm:"not null"`

	// Date is the day the task is scheduled for, as a zero-padded
	// YYYY-MM-DD string. It is a calendar date, not a timestamp.
	Date string `gorm:"size:10;not null;index"`

	// UserID is the owning user. Every task belongs to exactly one user.
	UserID uint `gorm:"not null;index"`

	// User backs the foreign key to the users table. Deleting a user who
	// still owns tasks is rejected rather than cascading or orphaning.
	User authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM.
func (Task) TableName() string {
	return "tasks"
}
