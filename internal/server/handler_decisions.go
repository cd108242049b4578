package server

import "net/http"

type recordDecisionRequest struct {
	Context        string   `json:"context"`
	Options        []string `json:"options"`
	SelectedOption string   `json:"selected_option"`
	Rationale      string   `json:"rationale"`
}

func (s *Server) handleRecordDecision(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	var req recordDecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	record, err := s.decisions.Record(r.Context(), userID, req.Context, req.Options, req.SelectedOption, req.Rationale)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondCreated(w, record)
}

type suggestRequest struct {
	Context string   `json:"context"`
	Options []string `json:"options"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_user_id", err.Error())
		return
	}

	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	suggestion, err := s.decisions.Suggest(r.Context(), userID, req.Context, req.Options)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondOK(w, suggestion)
}
