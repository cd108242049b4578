package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"planwise/internal/model"
)

// coldStartConfidence is returned when the history holds no similar decision.
const coldStartConfidence = 0.3

// DecisionStore persists the per-user decision log.
type DecisionStore interface {
	Append(ctx context.Context, record *model.DecisionRecord) error
	ListByUser(ctx context.Context, userID uint) ([]model.DecisionRecord, error)
}

// DecisionService records past choices and answers with frequency-weighted
// suggestions. Matching is plain substring containment over context strings;
// confidence is matches over history size, not a calibrated probability.
type DecisionService struct {
	store DecisionStore
	now   func() time.Time
	locks *userLocks
}

func NewDecisionService(store DecisionStore, now func() time.Time) *DecisionService {
	if now == nil {
		now = time.Now
	}
	return &DecisionService{store: store, now: now, locks: newUserLocks()}
}

// Record appends an immutable decision log entry.
func (s *DecisionService) Record(ctx context.Context, userID uint, decisionContext string, options []string, selected, rationale string) (*model.DecisionRecord, error) {
	if strings.TrimSpace(decisionContext) == "" || strings.TrimSpace(selected) == "" || len(options) == 0 {
		return nil, ErrInvalidDecision
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	record := &model.DecisionRecord{
		ID:             uuid.NewString(),
		UserID:         userID,
		Context:        decisionContext,
		Options:        model.JoinOptions(options),
		SelectedOption: selected,
		Rationale:      rationale,
		CreatedAt:      s.now(),
	}
	if err := s.store.Append(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Suggest scans the full history for contexts that contain, or are contained
// by, the query (case-insensitive) and recommends the first match's choice.
// Without a match it falls back to the first option at cold-start confidence.
func (s *DecisionService) Suggest(ctx context.Context, userID uint, decisionContext string, options []string) (*model.Suggestion, error) {
	if strings.TrimSpace(decisionContext) == "" || len(options) == 0 {
		return nil, ErrInvalidDecision
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	history, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load decision history: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(decisionContext))
	var first *model.DecisionRecord
	matches := 0
	for i := range history {
		stored := strings.ToLower(history[i].Context)
		if strings.Contains(stored, query) || strings.Contains(query, stored) {
			if first == nil {
				first = &history[i]
			}
			matches++
		}
	}

	if first == nil {
		return &model.Suggestion{
			Option:       options[0],
			Confidence:   coldStartConfidence,
			Rationale:    "no similar past decisions; defaulting to the first option",
			Alternatives: remainder(options, options[0]),
		}, nil
	}

	return &model.Suggestion{
		Option:       first.SelectedOption,
		Confidence:   float64(matches) / float64(len(history)),
		Rationale:    fmt.Sprintf("based on %d similar past decision(s): %s", matches, first.Rationale),
		Alternatives: remainder(options, first.SelectedOption),
	}, nil
}

// remainder returns options minus the chosen one, order preserved.
func remainder(options []string, chosen string) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		if opt != chosen {
			out = append(out, opt)
		}
	}
	return out
}
