package adapthttp

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"babytracker/internal/domain"
)

func (s *Server) handleEntryCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date   string   `json:"date"`
		Amount *float64 `json:"amount"`
		Notes  string   `json:"notes"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Amount == nil {
		writeDetail(w, http.StatusBadRequest, "amount is required")
		return
	}
	e, err := s.svc.Feedings.Record(r.Context(), body.Date, *body.Amount, body.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Entry added successfully",
		"id":         e.ID,
		"created_at": e.CreatedAt,
	})
}

func (s *Server) handleEntriesByDate(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.Feedings.ListByDate(r.Context(), r.PathValue("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

var errEmptyBody = errors.New("empty body")

// handleEntryUpdate accepts amount and notes as a JSON body or, for older
// clients, as query parameters. A missing entry is reported in a 200 body.
func (s *Server) handleEntryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	var body struct {
		Amount *float64 `json:"amount"`
		Notes  string   `json:"notes"`
	}
	err = errEmptyBody
	if r.ContentLength != 0 {
		err = parseJSON(r, &body)
	}
	switch {
	case errors.Is(err, errEmptyBody), errors.Is(err, io.EOF):
		q := r.URL.Query()
		if v := q.Get("amount"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				writeDetail(w, http.StatusBadRequest, "amount must be a number")
				return
			}
			body.Amount = &f
		}
		body.Notes = q.Get("notes")
	case err != nil:
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Amount == nil {
		writeDetail(w, http.StatusBadRequest, "amount is required")
		return
	}

	err = s.svc.Feedings.Update(r.Context(), id, *body.Amount, body.Notes)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{"error": "Entry not found"})
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Entry updated"})
}

func (s *Server) handleEntryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	err = s.svc.Feedings.Delete(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{"error": "Entry not found"})
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Entry deleted"})
}
