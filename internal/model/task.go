package model

import "time"

// Priority buckets tasks by importance.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its sort position; unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known priority buckets.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task represents a single unit of work to place on the day plan.
// Tasks are created and owned by the caller; the scheduler reads them
// during a run and never writes them back.
type Task struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint `gorm:"index"`
	Title           string
	DurationMinutes int
	Priority        Priority `gorm:"index"`
	Deadline        *time.Time
	Category        string
	Flexible        bool `gorm:"default:true"`
	IsCompleted     bool `gorm:"default:false"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
