package model

import "time"

// User stores dashboard account metadata. Every task, decision and
// curriculum progress row is keyed by a user id.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
