package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"planwise/internal/model"
)

const (
	morningRoutineMinutes = 30
	taskBufferMinutes     = 10
	breakMinutes          = 15
	breakCycle            = 2 * time.Hour
	breakWindow           = 30 * time.Minute
)

// PlanService turns an unordered task list into an ordered day plan. It is a
// greedy single-pass allocator: no backtracking and no work-end ceiling.
// Overruns surface as deadline-risk flags instead of rejections.
type PlanService struct {
	now func() time.Time
}

// NewPlanService builds a planner around the given clock; a nil clock means
// wall time. Tests pin the clock to fix the anchor date.
func NewPlanService(now func() time.Time) *PlanService {
	if now == nil {
		now = time.Now
	}
	return &PlanService{now: now}
}

// GenerateSchedule emits contiguous time blocks covering the given tasks.
// Deterministic for a fixed task order, preferences and clock. Tasks with a
// non-positive duration are rejected before any block is emitted.
func (s *PlanService) GenerateSchedule(tasks []model.Task, prefs model.SchedulePreferences) ([]model.TimeBlock, error) {
	for _, task := range tasks {
		if task.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: task %d %q", ErrInvalidTask, task.ID, task.Title)
		}
	}

	ordered := sortByUrgency(tasks)

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), prefs.WorkStartHour, 0, 0, 0, now.Location())
	cursor := dayStart

	var blocks []model.TimeBlock
	emit := func(kind model.BlockType, minutes int, taskID *uint) {
		end := cursor.Add(time.Duration(minutes) * time.Minute)
		blocks = append(blocks, model.TimeBlock{
			ID:     uuid.NewString(),
			Start:  cursor,
			End:    end,
			Type:   kind,
			TaskID: taskID,
		})
		cursor = end
	}

	if prefs.MorningRoutine {
		emit(model.BlockBuffer, morningRoutineMinutes, nil)
	}

	for i := range ordered {
		if prefs.TaskBuffers && len(blocks) > 0 {
			emit(model.BlockBuffer, taskBufferMinutes, nil)
		}
		// Periodic-break heuristic: roughly every two hours of plan time.
		// Deliberately approximate, not calendar-aware.
		if prefs.PeriodicBreaks && cursor.Sub(dayStart)%breakCycle < breakWindow {
			emit(model.BlockBreak, breakMinutes, nil)
		}
		taskID := ordered[i].ID
		emit(model.BlockFocus, ordered[i].DurationMinutes, &taskID)
	}

	flagDeadlineRisk(blocks, ordered)
	return blocks, nil
}

// sortByUrgency orders tasks by priority rank, breaking ties by ascending
// deadline with undated tasks last. The sort is stable so equal tasks keep
// their arrival order.
func sortByUrgency(tasks []model.Task) []model.Task {
	ordered := make([]model.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority.Rank() != ordered[j].Priority.Rank() {
			return ordered[i].Priority.Rank() < ordered[j].Priority.Rank()
		}
		switch {
		case ordered[i].Deadline == nil:
			return false
		case ordered[j].Deadline == nil:
			return true
		default:
			return ordered[i].Deadline.Before(*ordered[j].Deadline)
		}
	})
	return ordered
}

// flagDeadlineRisk marks focus blocks that finish after their task's deadline.
// Annotation only: the plan is never re-ordered in response.
func flagDeadlineRisk(blocks []model.TimeBlock, tasks []model.Task) {
	deadlines := make(map[uint]time.Time, len(tasks))
	for _, task := range tasks {
		if task.Deadline != nil {
			deadlines[task.ID] = *task.Deadline
		}
	}
	for i := range blocks {
		if blocks[i].Type != model.BlockFocus || blocks[i].TaskID == nil {
			continue
		}
		if deadline, ok := deadlines[*blocks[i].TaskID]; ok && blocks[i].End.After(deadline) {
			blocks[i].AtRisk = true
		}
	}
}

// AtRiskTasks lists the task ids whose focus block is flagged.
func AtRiskTasks(blocks []model.TimeBlock) []uint {
	var ids []uint
	for _, block := range blocks {
		if block.AtRisk && block.TaskID != nil {
			ids = append(ids, *block.TaskID)
		}
	}
	return ids
}
