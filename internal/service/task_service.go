package service

import (
	"context"
	"fmt"
	"time"

	"planwise/internal/model"
	"planwise/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title           string
	DurationMinutes int
	Priority        model.Priority
	Deadline        *time.Time
	Category        string
	Flexible        bool
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTask, input.Title)
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q", input.Priority)
	}

	task := model.Task{
		UserID:          userID,
		Title:           input.Title,
		DurationMinutes: input.DurationMinutes,
		Priority:        priority,
		Deadline:        input.Deadline,
		Category:        input.Category,
		Flexible:        input.Flexible,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) ListPending(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.taskRepo.ListPending(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, userID, taskID)
}

// CompleteTask marks a task as done. Completed tasks drop out of scheduling.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uint, completedAt time.Time) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.MarkCompleted(ctx, task, completedAt); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	return s.taskRepo.Delete(ctx, userID, taskID)
}
