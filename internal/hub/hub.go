// Package hub maintains the set of live listeners and fans out event
// messages to them.
package hub

import (
	"context"
	"errors"
	"log"
	"sync"

	"babytracker/internal/metrics"
)

// ErrClosed is returned by Register after Close.
var ErrClosed = errors.New("hub closed")

// Listener is a connected client receiving broadcast messages.
type Listener interface {
	ID() string
	Send(ctx context.Context, msg string) error
	Close() error
}

// queueSize bounds the messages waiting for one listener. A listener that
// falls this far behind is dropped.
const queueSize = 64

// peer pairs a listener with its delivery queue. A single writer goroutine
// drains the queue, so a listener sees messages in broadcast order.
type peer struct {
	l     Listener
	queue chan string
	gone  chan struct{}
}

// Hub is the notification hub. The zero value is not usable; call New.
type Hub struct {
	mu        sync.RWMutex
	listeners map[string]*peer
	closed    bool
	metrics   *metrics.Metrics

	writers sync.WaitGroup
}

// New creates an empty hub. m may be nil.
func New(m *metrics.Metrics) *Hub {
	return &Hub{listeners: make(map[string]*peer), metrics: m}
}

// Register adds l to the live set; it receives every later broadcast.
func (h *Hub) Register(l Listener) error {
	p := &peer{l: l, queue: make(chan string, queueSize), gone: make(chan struct{})}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.listeners[l.ID()] = p
	n := len(h.listeners)
	h.writers.Add(1)
	h.mu.Unlock()

	go h.deliver(p)

	h.metrics.SetListeners(n)
	log.Printf("hub: listener %s connected (%d live)", l.ID(), n)
	return nil
}

// deliver writes queued messages to p until it is unregistered or a write
// fails.
func (h *Hub) deliver(p *peer) {
	defer h.writers.Done()
	for {
		select {
		case <-p.gone:
			return
		default:
		}
		select {
		case <-p.gone:
			return
		case msg := <-p.queue:
			if err := p.l.Send(context.Background(), msg); err != nil {
				h.metrics.IncDeliveryFailures()
				log.Printf("hub: deliver to %s: %v", p.l.ID(), err)
				h.Unregister(p.l)
				return
			}
		}
	}
}

// Unregister removes l from the live set and closes it. It is safe to call
// more than once and for listeners that were never registered.
func (h *Hub) Unregister(l Listener) {
	h.mu.Lock()
	p, ok := h.listeners[l.ID()]
	ok = ok && p.l == l
	if ok {
		delete(h.listeners, l.ID())
		close(p.gone)
	}
	n := len(h.listeners)
	h.mu.Unlock()

	_ = l.Close()
	if ok {
		h.metrics.SetListeners(n)
		log.Printf("hub: listener %s disconnected (%d live)", l.ID(), n)
	}
}

// Len returns the number of live listeners.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// Broadcast queues msg for every listener registered at the time of the call
// and returns without waiting for delivery. Writes happen on each listener's
// own goroutine, detached from ctx. A listener whose write fails, or whose
// queue is full, is unregistered; the failure is never reported to the caller.
func (h *Hub) Broadcast(_ context.Context, msg string) {
	h.metrics.IncBroadcasts()

	var overflow []Listener
	h.mu.RLock()
	for _, p := range h.listeners {
		select {
		case p.queue <- msg:
		default:
			overflow = append(overflow, p.l)
		}
	}
	h.mu.RUnlock()

	for _, l := range overflow {
		h.metrics.IncDeliveryFailures()
		log.Printf("hub: listener %s is %d messages behind, dropping", l.ID(), queueSize)
		h.Unregister(l)
	}
}

// Close unregisters and closes every listener, then waits for in-flight
// writes to finish. Later Register calls fail.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	targets := make([]Listener, 0, len(h.listeners))
	for _, p := range h.listeners {
		targets = append(targets, p.l)
	}
	h.mu.Unlock()

	for _, l := range targets {
		h.Unregister(l)
	}
	h.writers.Wait()
}
