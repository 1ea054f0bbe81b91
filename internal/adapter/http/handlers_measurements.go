package adapthttp

import (
	"errors"
	"net/http"

	"babytracker/internal/domain"
)

func (s *Server) handleMeasurementRecord(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date   string   `json:"date"`
		Weight *float64 `json:"weight"`
		Height *float64 `json:"height"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Weight == nil || body.Height == nil {
		writeDetail(w, http.StatusBadRequest, "weight and height are required")
		return
	}
	_, created, err := s.svc.Measurements.Record(r.Context(), body.Date, *body.Weight, *body.Height)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	msg := "Measurement updated"
	if created {
		msg = "Measurement added"
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}

func (s *Server) handleMeasurementGet(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.Measurements.Get(r.Context(), r.PathValue("date"))
	if errors.Is(err, domain.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Measurement not found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"measurement": m})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.svc.Summary.Day(r.Context(), r.PathValue("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
