package service

import (
	"context"
	"fmt"
	"time"

	"planwise/internal/curriculum"
	"planwise/internal/model"
)

// ProgressStore persists per-user curriculum progress rows. Get returns nil
// when no row exists for the pair.
type ProgressStore interface {
	Get(ctx context.Context, userID uint, moduleID string) (*model.ModuleProgress, error)
	Save(ctx context.Context, progress *model.ModuleProgress) error
	ListByUser(ctx context.Context, userID uint) ([]model.ModuleProgress, error)
}

// CompetencyService tracks progress through the fixed curriculum and derives
// the competency percentage from it. Module state only moves forward:
// not_started -> in_progress -> completed.
type CompetencyService struct {
	store ProgressStore
	now   func() time.Time
	locks *userLocks
}

func NewCompetencyService(store ProgressStore, now func() time.Time) *CompetencyService {
	if now == nil {
		now = time.Now
	}
	return &CompetencyService{store: store, now: now, locks: newUserLocks()}
}

// StartModule transitions a module to in-progress. Starting an already
// started module returns the existing row untouched, StartedAt included.
func (s *CompetencyService) StartModule(ctx context.Context, userID uint, moduleID string) (*model.ModuleProgress, error) {
	if _, ok := curriculum.ByID(moduleID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, moduleID)
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.store.Get(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	started := s.now()
	progress := &model.ModuleProgress{
		UserID:    userID,
		ModuleID:  moduleID,
		Status:    model.ModuleInProgress,
		StartedAt: &started,
	}
	if err := s.store.Save(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// CompleteModule stores the assessment score and marks the module done.
// Completion requires a prior start. Completed is terminal: a repeat call
// keeps the original result.
func (s *CompetencyService) CompleteModule(ctx context.Context, userID uint, moduleID string, score float64) (*model.ModuleProgress, error) {
	if _, ok := curriculum.ByID(moduleID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, moduleID)
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.store.Get(ctx, userID, moduleID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotStarted, moduleID)
	}
	if progress.Status == model.ModuleCompleted {
		return progress, nil
	}

	completed := s.now()
	progress.Status = model.ModuleCompleted
	progress.Score = score
	progress.CompletedAt = &completed
	if err := s.store.Save(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// Summary derives the competency snapshot: overall = completed/total x 100,
// average = mean assessment score over completed modules.
func (s *CompetencyService) Summary(ctx context.Context, userID uint) (*model.CompetencySummary, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	rows, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byModule := make(map[string]model.ModuleProgress, len(rows))
	for _, row := range rows {
		byModule[row.ModuleID] = row
	}

	modules := curriculum.Modules()
	states := make([]model.ModuleState, 0, len(modules))
	completed := 0
	scoreSum := 0.0
	for _, mod := range modules {
		state := model.ModuleState{ModuleID: mod.ID, Title: mod.Title, Status: model.ModuleNotStarted}
		if row, ok := byModule[mod.ID]; ok {
			state.Status = row.Status
			if row.Status == model.ModuleCompleted {
				state.Score = row.Score
				completed++
				scoreSum += row.Score
			}
		}
		states = append(states, state)
	}

	summary := &model.CompetencySummary{
		OverallScore:     float64(completed) / float64(len(modules)) * 100,
		CompletedModules: completed,
		TotalModules:     len(modules),
		Modules:          states,
	}
	if completed > 0 {
		summary.AverageScore = scoreSum / float64(completed)
	}
	return summary, nil
}
