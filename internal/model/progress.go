package model

import "time"

// ModuleStatus is the per-module state machine:
// not_started -> in_progress -> completed. Completed is terminal.
type ModuleStatus string

const (
	ModuleNotStarted ModuleStatus = "not_started"
	ModuleInProgress ModuleStatus = "in_progress"
	ModuleCompleted  ModuleStatus = "completed"
)

// ModuleProgress tracks one user's state for one curriculum module.
// Score is meaningful only once the module is completed.
type ModuleProgress struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index:idx_user_module,unique"`
	ModuleID    string `gorm:"index:idx_user_module,unique"`
	Status      ModuleStatus
	Score       float64
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ModuleState pairs a curriculum module with its progress for summaries.
type ModuleState struct {
	ModuleID string       `json:"module_id"`
	Title    string       `json:"title"`
	Status   ModuleStatus `json:"status"`
	Score    float64      `json:"score,omitempty"`
}

// CompetencySummary aggregates progress across the fixed curriculum:
// overall = completed/total x 100, average = mean score over completed
// modules (0 when none are completed).
type CompetencySummary struct {
	OverallScore     float64       `json:"overall_score"`
	AverageScore     float64       `json:"average_score"`
	CompletedModules int           `json:"completed_modules"`
	TotalModules     int           `json:"total_modules"`
	Modules          []ModuleState `json:"modules"`
}
