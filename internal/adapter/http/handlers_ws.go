package adapthttp

import (
	"log"
	"net/http"
	"time"

	"babytracker/internal/hub"
)

// handleWS upgrades the connection and keeps the listener registered until
// the client goes away. Inbound messages are discarded.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	l := hub.NewWSListener(conn, s.writeTimeout)
	if err := s.hub.Register(l); err != nil {
		_ = l.Close()
		return
	}
	defer s.hub.Unregister(l)

	// ping to keep connections alive through proxies
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(s.pingInterval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if err := l.Ping(); err != nil {
					s.hub.Unregister(l)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	_ = l.ReadLoop()
}
