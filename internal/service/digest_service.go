package service

import (
	"context"
	"fmt"
	"log/slog"

	"planwise/internal/model"
	"planwise/internal/repository"
)

// DigestService periodically rebuilds each user's plan from pending work and
// reports tasks whose slots already run past their deadlines.
type DigestService struct {
	userRepo *repository.UserRepository
	taskRepo *repository.TaskRepository
	plans    *PlanService
	logger   *slog.Logger
}

func NewDigestService(userRepo *repository.UserRepository, taskRepo *repository.TaskRepository, plans *PlanService, logger *slog.Logger) *DigestService {
	return &DigestService{userRepo: userRepo, taskRepo: taskRepo, plans: plans, logger: logger}
}

// Sweep walks all users, replans their pending tasks with default
// preferences and logs how many land past their deadlines.
func (s *DigestService) Sweep(ctx context.Context) error {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return err
		}
		tasks, err := s.taskRepo.ListPending(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("list tasks for user %d: %w", user.ID, err)
		}
		if len(tasks) == 0 {
			continue
		}

		blocks, err := s.plans.GenerateSchedule(tasks, model.DefaultPreferences())
		if err != nil {
			// A malformed task should not stall the whole sweep.
			s.logger.Warn("skip user in risk sweep", "user", user.ID, "error", err)
			continue
		}

		if atRisk := AtRiskTasks(blocks); len(atRisk) > 0 {
			s.logger.Info("deadline risk detected",
				"user", user.ID,
				"pending", len(tasks),
				"at_risk", len(atRisk),
				"task_ids", atRisk,
			)
		}
	}
	return nil
}
