package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planwise/internal/model"
)

// ProgressRepository stores per-user curriculum progress rows.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Get returns the progress row for (user, module), or nil when none exists.
func (r *ProgressRepository) Get(ctx context.Context, userID uint, moduleID string) (*model.ModuleProgress, error) {
	var progress model.ModuleProgress
	err := r.db.WithContext(ctx).Where("user_id = ? AND module_id = ?", userID, moduleID).First(&progress).Error
	switch {
	case err == nil:
		return &progress, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find module progress: %w", err)
	}
}

func (r *ProgressRepository) Save(ctx context.Context, progress *model.ModuleProgress) error {
	if err := r.db.WithContext(ctx).Save(progress).Error; err != nil {
		return fmt.Errorf("save module progress: %w", err)
	}
	return nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uint) ([]model.ModuleProgress, error) {
	var rows []model.ModuleProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("module_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
