package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCompetency(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	summary, err := s.competency.Summary(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, summary)
}

func (s *Server) handleStartModule(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	progress, err := s.competency.StartModule(r.Context(), userID, chi.URLParam(r, "moduleID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, progress)
}

type completeModuleRequest struct {
	Score float64 `json:"score"`
}

func (s *Server) handleCompleteModule(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	var req completeModuleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	progress, err := s.competency.CompleteModule(r.Context(), userID, chi.URLParam(r, "moduleID"), req.Score)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, progress)
}
