package adapthttp

import (
	"math"
	"net/http"
)

func (s *Server) handleGoalSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date string   `json:"date"`
		Goal *float64 `json:"goal"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Goal == nil {
		writeDetail(w, http.StatusBadRequest, "goal is required")
		return
	}
	// Integral numbers such as 900.0 are accepted.
	v := *body.Goal
	if math.Trunc(v) != v || math.Abs(v) > 1<<53 {
		writeDetail(w, http.StatusBadRequest, "goal must be an integer")
		return
	}
	g, err := s.svc.Goals.Set(r.Context(), body.Date, int(v))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Goal set", "date": g.Date, "goal": g.Goal})
}

func (s *Server) handleGoalGet(w http.ResponseWriter, r *http.Request) {
	goal, err := s.svc.Goals.Get(r.Context(), r.PathValue("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goal": goal})
}
