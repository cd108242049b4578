package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"planwise/internal/model"
	"planwise/internal/service"
)

type upsertUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "missing_email", "email is required")
		return
	}

	user, err := s.users.UpsertByEmail(r.Context(), strings.TrimSpace(req.Email), req.FirstName, req.LastName)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, user)
}

type taskRequest struct {
	Title           string         `json:"title"`
	DurationMinutes int            `json:"duration_minutes"`
	Priority        model.Priority `json:"priority"`
	Deadline        *time.Time     `json:"deadline,omitempty"`
	Category        string         `json:"category"`
	Flexible        bool           `json:"flexible"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	task, err := s.tasks.CreateTask(r.Context(), userID, service.TaskInput{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Priority:        req.Priority,
		Deadline:        req.Deadline,
		Category:        req.Category,
		Flexible:        req.Flexible,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, task)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	tasks, err := s.tasks.ListPending(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, tasks)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}
	taskID, err := pathTaskID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_task_id", err.Error())
		return
	}

	task, err := s.tasks.CompleteTask(r.Context(), userID, taskID, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}
	taskID, err := pathTaskID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_task_id", err.Error())
		return
	}

	if err := s.tasks.DeleteTask(r.Context(), userID, taskID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, map[string]uint{"deleted": taskID})
}

func pathTaskID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
