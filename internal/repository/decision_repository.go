package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planwise/internal/model"
)

// DecisionRepository appends and reads the immutable decision log.
type DecisionRepository struct {
	db *gorm.DB
}

func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

func (r *DecisionRepository) Append(ctx context.Context, record *model.DecisionRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("append decision: %w", err)
	}
	return nil
}

// ListByUser returns a user's full history in insertion order.
func (r *DecisionRepository) ListByUser(ctx context.Context, userID uint) ([]model.DecisionRecord, error) {
	var records []model.DecisionRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
