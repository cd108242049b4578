package service

import (
	"errors"
	"testing"
	"time"

	"planwise/internal/model"
)

var anchor = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return anchor }

func barePrefs() model.SchedulePreferences {
	return model.SchedulePreferences{WorkStartHour: 9, WorkEndHour: 18}
}

func makeTask(id uint, title string, minutes int, priority model.Priority, deadline *time.Time) model.Task {
	return model.Task{
		ID:              id,
		UserID:          1,
		Title:           title,
		DurationMinutes: minutes,
		Priority:        priority,
		Deadline:        deadline,
	}
}

func deadlineAt(hour, minute int) *time.Time {
	d := time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	return &d
}

func TestScheduleContiguity(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "write proposal", 90, model.PriorityHigh, nil),
		makeTask(2, "email backlog", 30, model.PriorityLow, nil),
		makeTask(3, "budget review", 45, model.PriorityMedium, deadlineAt(17, 0)),
	}

	blocks, err := svc.GenerateSchedule(tasks, model.DefaultPreferences())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(blocks) == 0 {
		t.Fatal("expected blocks")
	}

	for i, block := range blocks {
		if !block.Start.Before(block.End) {
			t.Fatalf("block %d has non-positive duration: %v .. %v", i, block.Start, block.End)
		}
		if i > 0 && !blocks[i-1].End.Equal(block.Start) {
			t.Fatalf("gap between block %d and %d: %v != %v", i-1, i, blocks[i-1].End, block.Start)
		}
	}
}

func TestScheduleConservation(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "a", 25, model.PriorityHigh, nil),
		makeTask(2, "b", 50, model.PriorityMedium, nil),
		makeTask(3, "c", 35, model.PriorityLow, nil),
	}

	blocks, err := svc.GenerateSchedule(tasks, model.DefaultPreferences())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var focusTotal time.Duration
	for _, block := range blocks {
		if block.Type == model.BlockFocus {
			focusTotal += block.End.Sub(block.Start)
		}
	}
	if want := 110 * time.Minute; focusTotal != want {
		t.Fatalf("focus total = %v, want %v", focusTotal, want)
	}
}

func TestPriorityOrdering(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "high", 30, model.PriorityHigh, nil),
		makeTask(2, "low", 30, model.PriorityLow, nil),
		makeTask(3, "medium", 30, model.PriorityMedium, nil),
	}

	blocks, err := svc.GenerateSchedule(tasks, barePrefs())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 focus blocks, got %d", len(blocks))
	}

	want := []uint{1, 3, 2}
	for i, block := range blocks {
		if block.Type != model.BlockFocus || block.TaskID == nil {
			t.Fatalf("block %d is not a task focus block", i)
		}
		if *block.TaskID != want[i] {
			t.Fatalf("block %d carries task %d, want %d", i, *block.TaskID, want[i])
		}
	}
}

func TestDeadlineTieBreak(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "undated", 30, model.PriorityMedium, nil),
		makeTask(2, "late deadline", 30, model.PriorityMedium, deadlineAt(15, 0)),
		makeTask(3, "early deadline", 30, model.PriorityMedium, deadlineAt(12, 0)),
	}

	blocks, err := svc.GenerateSchedule(tasks, barePrefs())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []uint{3, 2, 1}
	for i, block := range blocks {
		if *block.TaskID != want[i] {
			t.Fatalf("position %d holds task %d, want %d", i, *block.TaskID, want[i])
		}
	}
}

func TestStableOrderForEqualTasks(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(7, "first in", 30, model.PriorityMedium, nil),
		makeTask(8, "second in", 30, model.PriorityMedium, nil),
	}

	blocks, err := svc.GenerateSchedule(tasks, barePrefs())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if *blocks[0].TaskID != 7 || *blocks[1].TaskID != 8 {
		t.Fatalf("equal tasks lost arrival order: %d, %d", *blocks[0].TaskID, *blocks[1].TaskID)
	}
}

func TestDeadlineRiskFlag(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "overrunning", 60, model.PriorityHigh, deadlineAt(9, 30)),
	}

	blocks, err := svc.GenerateSchedule(tasks, barePrefs())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !blocks[0].AtRisk {
		t.Fatal("block ending past the deadline must be flagged at risk")
	}

	atRisk := AtRiskTasks(blocks)
	if len(atRisk) != 1 || atRisk[0] != 1 {
		t.Fatalf("AtRiskTasks = %v, want [1]", atRisk)
	}
}

func TestDeadlineMetNotFlagged(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "comfortable", 30, model.PriorityHigh, deadlineAt(17, 0)),
	}

	blocks, err := svc.GenerateSchedule(tasks, barePrefs())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if blocks[0].AtRisk {
		t.Fatal("block within its deadline must not be flagged")
	}
}

func TestMorningRoutineBlock(t *testing.T) {
	svc := NewPlanService(fixedClock)
	prefs := barePrefs()
	prefs.MorningRoutine = true

	blocks, err := svc.GenerateSchedule(nil, prefs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected just the routine block, got %d", len(blocks))
	}
	if blocks[0].Type != model.BlockBuffer {
		t.Fatalf("routine block type = %s, want buffer", blocks[0].Type)
	}
	if got := blocks[0].End.Sub(blocks[0].Start); got != 30*time.Minute {
		t.Fatalf("routine block duration = %v, want 30m", got)
	}
	if blocks[0].Start.Hour() != 9 {
		t.Fatalf("day anchored at %d:00, want 9:00", blocks[0].Start.Hour())
	}
}

func TestEmptyScheduleWithoutRoutine(t *testing.T) {
	svc := NewPlanService(fixedClock)
	blocks, err := svc.GenerateSchedule(nil, barePrefs())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("expected empty schedule, got %d blocks", len(blocks))
	}
}

func TestBufferBetweenTasks(t *testing.T) {
	svc := NewPlanService(fixedClock)
	prefs := barePrefs()
	prefs.TaskBuffers = true
	tasks := []model.Task{
		makeTask(1, "a", 60, model.PriorityHigh, nil),
		makeTask(2, "b", 60, model.PriorityHigh, nil),
	}

	blocks, err := svc.GenerateSchedule(tasks, prefs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	types := []model.BlockType{model.BlockFocus, model.BlockBuffer, model.BlockFocus}
	if len(blocks) != len(types) {
		t.Fatalf("expected %d blocks, got %d", len(types), len(blocks))
	}
	for i, want := range types {
		if blocks[i].Type != want {
			t.Fatalf("block %d type = %s, want %s", i, blocks[i].Type, want)
		}
	}
	if got := blocks[1].End.Sub(blocks[1].Start); got != 10*time.Minute {
		t.Fatalf("buffer duration = %v, want 10m", got)
	}
}

func TestPeriodicBreakHeuristic(t *testing.T) {
	svc := NewPlanService(fixedClock)
	prefs := barePrefs()
	prefs.PeriodicBreaks = true
	tasks := []model.Task{
		makeTask(1, "a", 60, model.PriorityHigh, nil),
		makeTask(2, "b", 45, model.PriorityHigh, nil),
	}

	blocks, err := svc.GenerateSchedule(tasks, prefs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Elapsed time is zero before the first task, which lands inside the
	// break window; 75 minutes in, the second task does not.
	types := []model.BlockType{model.BlockBreak, model.BlockFocus, model.BlockFocus}
	if len(blocks) != len(types) {
		t.Fatalf("expected %d blocks, got %d", len(types), len(blocks))
	}
	for i, want := range types {
		if blocks[i].Type != want {
			t.Fatalf("block %d type = %s, want %s", i, blocks[i].Type, want)
		}
	}
	if got := blocks[0].End.Sub(blocks[0].Start); got != 15*time.Minute {
		t.Fatalf("break duration = %v, want 15m", got)
	}
}

func TestNonPositiveDurationRejected(t *testing.T) {
	svc := NewPlanService(fixedClock)
	for _, minutes := range []int{0, -15} {
		tasks := []model.Task{makeTask(1, "broken", minutes, model.PriorityHigh, nil)}
		blocks, err := svc.GenerateSchedule(tasks, barePrefs())
		if !errors.Is(err, ErrInvalidTask) {
			t.Fatalf("duration %d: err = %v, want ErrInvalidTask", minutes, err)
		}
		if blocks != nil {
			t.Fatalf("duration %d: expected no blocks on error", minutes)
		}
	}
}

func TestScheduleDeterministic(t *testing.T) {
	svc := NewPlanService(fixedClock)
	tasks := []model.Task{
		makeTask(1, "a", 40, model.PriorityMedium, deadlineAt(14, 0)),
		makeTask(2, "b", 20, model.PriorityHigh, nil),
		makeTask(3, "c", 30, model.PriorityLow, nil),
	}
	prefs := model.DefaultPreferences()

	first, err := svc.GenerateSchedule(tasks, prefs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := svc.GenerateSchedule(tasks, prefs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) ||
			first[i].Type != second[i].Type || first[i].AtRisk != second[i].AtRisk {
			t.Fatalf("block %d differs between runs", i)
		}
	}
}
