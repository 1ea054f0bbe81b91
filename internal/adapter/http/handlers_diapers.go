package adapthttp

import (
	"errors"
	"net/http"

	"babytracker/internal/domain"
)

func (s *Server) handleDiaperLog(kind domain.DiaperKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Date string `json:"date"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		l, err := s.svc.Diapers.Log(r.Context(), kind, body.Date)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":   kind.Label() + " logged",
			"id":        l.ID,
			"timestamp": l.CreatedAt,
		})
	}
}

func (s *Server) handleDiaperList(kind domain.DiaperKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := s.svc.Diapers.List(r.Context(), kind, r.PathValue("date"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"logs": logs})
	}
}

func (s *Server) handleDiaperDelete(kind domain.DiaperKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		err = s.svc.Diapers.Delete(r.Context(), kind, id)
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, kind.Label()+" log not found")
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": kind.Label() + " log deleted"})
	}
}
