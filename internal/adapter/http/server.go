// Package adapthttp implements the HTTP and websocket adapter for the
// application services.
package adapthttp

import (
	"net/http"
	"time"

	"babytracker/internal/app"
	"babytracker/internal/domain"
	"babytracker/internal/hub"
	"babytracker/internal/metrics"

	"github.com/gorilla/websocket"
)

// Services bundles the application services the adapter drives.
type Services struct {
	Feedings     *app.FeedingService
	Goals        *app.GoalService
	Measurements *app.MeasurementService
	Diapers      *app.DiaperService
	Summary      *app.SummaryService
}

// Options tunes the adapter. Zero values fall back to defaults.
type Options struct {
	CORSOrigins  []string
	PingInterval time.Duration
	WriteTimeout time.Duration
	Metrics      *metrics.Metrics
}

// Server is the driving HTTP adapter that routes requests to application
// services and live listeners to the hub.
type Server struct {
	svc          Services
	hub          *hub.Hub
	metrics      *metrics.Metrics
	corsOrigins  []string
	pingInterval time.Duration
	writeTimeout time.Duration
	upgrader     websocket.Upgrader
}

// New creates a Server wired to the given services and hub.
func New(svc Services, h *hub.Hub, opts Options) *Server {
	s := &Server{
		svc:          svc,
		hub:          h,
		metrics:      opts.Metrics,
		corsOrigins:  opts.CORSOrigins,
		pingInterval: opts.PingInterval,
		writeTimeout: opts.WriteTimeout,
	}
	if len(s.corsOrigins) == 0 {
		s.corsOrigins = []string{"*"}
	}
	if s.pingInterval <= 0 {
		s.pingInterval = 25 * time.Second
	}
	if s.writeTimeout <= 0 {
		s.writeTimeout = 10 * time.Second
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	mux.Handle("GET /metrics", s.metrics.Handler())

	mux.HandleFunc("POST /entries", s.handleEntryCreate)
	mux.HandleFunc("GET /entries/{date}", s.handleEntriesByDate)
	mux.HandleFunc("PUT /entries/{id}", s.handleEntryUpdate)
	mux.HandleFunc("DELETE /entries/{id}", s.handleEntryDelete)

	mux.HandleFunc("POST /goals", s.handleGoalSet)
	mux.HandleFunc("GET /goals/{date}", s.handleGoalGet)

	mux.HandleFunc("POST /measurements", s.handleMeasurementRecord)
	mux.HandleFunc("GET /measurements/{date}", s.handleMeasurementGet)

	for _, kind := range []domain.DiaperKind{domain.Pee, domain.Poop} {
		mux.HandleFunc("POST /"+string(kind), s.handleDiaperLog(kind))
		mux.HandleFunc("GET /"+string(kind)+"/{date}", s.handleDiaperList(kind))
		mux.HandleFunc("DELETE /"+string(kind)+"/{id}", s.handleDiaperDelete(kind))
	}

	mux.HandleFunc("GET /summary/{date}", s.handleSummary)
	mux.HandleFunc("GET /ws", s.handleWS)

	return s.loggingMiddleware(s.corsMiddleware(mux))
}
