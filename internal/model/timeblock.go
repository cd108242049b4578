package model

import "time"

// BlockType classifies a slot on the generated day plan.
type BlockType string

const (
	BlockFocus   BlockType = "focus"
	BlockMeeting BlockType = "meeting"
	BlockBreak   BlockType = "break"
	BlockBuffer  BlockType = "buffer"
)

// TimeBlock is one contiguous slot of a generated schedule. Blocks are
// produced fresh on every run, never mutated afterwards, and never persisted
// by the engine. TaskID is set only on focus blocks carrying a task.
type TimeBlock struct {
	ID     string    `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Type   BlockType `json:"type"`
	TaskID *uint     `json:"task_id,omitempty"`
	AtRisk bool      `json:"at_risk,omitempty"`
}

// SchedulePreferences configures a single scheduling run. The engine keeps no
// memory of past preference values. The peak window and focus-block target are
// declarative hints for callers; allocation itself is driven by task duration.
type SchedulePreferences struct {
	WorkStartHour     int  `json:"work_start_hour"`
	WorkEndHour       int  `json:"work_end_hour"`
	PeakStartHour     int  `json:"peak_start_hour"`
	PeakEndHour       int  `json:"peak_end_hour"`
	MorningRoutine    bool `json:"morning_routine"`
	PeriodicBreaks    bool `json:"periodic_breaks"`
	TaskBuffers       bool `json:"task_buffers"`
	FocusBlockMinutes int  `json:"focus_block_minutes"`
}

// DefaultPreferences mirrors a typical 9-to-6 office day.
func DefaultPreferences() SchedulePreferences {
	return SchedulePreferences{
		WorkStartHour:     9,
		WorkEndHour:       18,
		PeakStartHour:     10,
		PeakEndHour:       13,
		MorningRoutine:    true,
		PeriodicBreaks:    true,
		TaskBuffers:       true,
		FocusBlockMinutes: 50,
	}
}
