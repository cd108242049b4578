package server

import (
	"net/http"

	"planwise/internal/model"
	"planwise/internal/service"
)

type scheduleRequest struct {
	Preferences *model.SchedulePreferences `json:"preferences,omitempty"`
	Tasks       []taskRequest              `json:"tasks,omitempty"`
}

type scheduleResponse struct {
	Blocks      []model.TimeBlock `json:"blocks"`
	AtRiskTasks []uint            `json:"at_risk_tasks,omitempty"`
}

// handleSchedule generates a day plan. Tasks may be supplied inline; when the
// body carries none, the user's stored pending tasks are planned instead.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	var req scheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	prefs := model.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	var tasks []model.Task
	if len(req.Tasks) > 0 {
		tasks = make([]model.Task, 0, len(req.Tasks))
		for i, in := range req.Tasks {
			priority := in.Priority
			if priority == "" {
				priority = model.PriorityMedium
			}
			tasks = append(tasks, model.Task{
				ID:              uint(i + 1),
				UserID:          userID,
				Title:           in.Title,
				DurationMinutes: in.DurationMinutes,
				Priority:        priority,
				Deadline:        in.Deadline,
				Category:        in.Category,
				Flexible:        in.Flexible,
			})
		}
	} else {
		tasks, err = s.tasks.ListPending(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
	}

	blocks, err := s.plans.GenerateSchedule(tasks, prefs)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondOK(w, scheduleResponse{
		Blocks:      blocks,
		AtRiskTasks: service.AtRiskTasks(blocks),
	})
}
