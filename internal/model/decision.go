package model

import (
	"strings"
	"time"
)

// optionSeparator joins option strings into a single stored column.
const optionSeparator = "\n"

// DecisionRecord is an append-only log entry of one past choice. Records are
// written exactly once and never edited.
type DecisionRecord struct {
	ID             string `gorm:"primaryKey"`
	UserID         uint   `gorm:"index"`
	Context        string
	Options        string
	SelectedOption string
	Rationale      string
	CreatedAt      time.Time
}

// JoinOptions serializes an option list for storage.
func JoinOptions(options []string) string {
	return strings.Join(options, optionSeparator)
}

// OptionList splits the stored options back into a slice.
func (r DecisionRecord) OptionList() []string {
	if r.Options == "" {
		return nil
	}
	return strings.Split(r.Options, optionSeparator)
}

// Suggestion is a derived recommendation with no lifecycle of its own.
// Confidence is a frequency ratio over the decision history, not a
// calibrated probability.
type Suggestion struct {
	Option       string   `json:"option"`
	Confidence   float64  `json:"confidence"`
	Rationale    string   `json:"rationale"`
	Alternatives []string `json:"alternatives"`
}
