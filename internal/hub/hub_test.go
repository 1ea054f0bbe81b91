package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"babytracker/internal/metrics"
)

type fakeListener struct {
	id      string
	fail    bool
	mu      sync.Mutex
	msgs    []string
	closed  int
	blockCh chan struct{}
}

func newFake(id string) *fakeListener { return &fakeListener{id: id} }

func (f *fakeListener) ID() string { return f.id }

func (f *fakeListener) Send(_ context.Context, msg string) error {
	if f.blockCh != nil {
		<-f.blockCh
	}
	if f.fail {
		return errors.New("use of closed network connection")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeListener) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

func (f *fakeListener) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeListener) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.msgs...)
}

// eventually polls cond until it holds or a second passes.
func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestBroadcastReachesEveryListenerOnce(t *testing.T) {
	h := New(nil)
	var ls []*fakeListener
	for i := 0; i < 5; i++ {
		l := newFake(fmt.Sprintf("l%d", i))
		ls = append(ls, l)
		if err := h.Register(l); err != nil {
			t.Fatal(err)
		}
	}
	gone := newFake("gone")
	if err := h.Register(gone); err != nil {
		t.Fatal(err)
	}
	h.Unregister(gone)

	h.Broadcast(context.Background(), "New entry: 2024-05-01 - 120ml")

	for _, l := range ls {
		eventually(t, l.id+" delivery", func() bool { return len(l.received()) > 0 })
	}
	for _, l := range ls {
		got := l.received()
		if len(got) != 1 || got[0] != "New entry: 2024-05-01 - 120ml" {
			t.Errorf("%s received %q", l.id, got)
		}
	}
	if got := gone.received(); len(got) != 0 {
		t.Errorf("unregistered listener received %q", got)
	}
}

func TestFailedDeliveryRemovesListener(t *testing.T) {
	m := metrics.New()
	h := New(m)
	good := newFake("good")
	bad := &fakeListener{id: "bad", fail: true}
	_ = h.Register(good)
	_ = h.Register(bad)

	h.Broadcast(context.Background(), "Deleted entry 1")

	eventually(t, "failed listener removal", func() bool { return h.Len() == 1 })
	if n := bad.closeCount(); n != 1 {
		t.Errorf("expected failed listener to be closed once, got %d", n)
	}
	eventually(t, "first delivery", func() bool { return len(good.received()) == 1 })

	h.Broadcast(context.Background(), "Deleted entry 2")
	eventually(t, "second delivery", func() bool { return len(good.received()) == 2 })
}

func TestBroadcastWithCanceledContext(t *testing.T) {
	h := New(nil)
	l := newFake("l")
	_ = h.Register(l)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Broadcast(ctx, "Updated entry 3: 90ml")
	eventually(t, "delivery", func() bool { return len(l.received()) > 0 })

	if got := l.received(); len(got) != 1 {
		t.Fatalf("expected delivery despite canceled request, got %q", got)
	}
}

func TestBroadcastDoesNotWaitForSlowListener(t *testing.T) {
	h := New(nil)
	slow := &fakeListener{id: "slow", blockCh: make(chan struct{})}
	fast := newFake("fast")
	_ = h.Register(slow)
	_ = h.Register(fast)

	done := make(chan struct{})
	go func() {
		h.Broadcast(context.Background(), "msg")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast waited for a blocked listener")
	}
	if len(slow.received()) != 0 {
		t.Fatal("slow listener should still be blocked")
	}
	eventually(t, "fast delivery", func() bool { return len(fast.received()) == 1 })

	close(slow.blockCh)
	eventually(t, "slow delivery", func() bool { return len(slow.received()) == 1 })
	h.Close()
}

func TestDeliveryPreservesOrder(t *testing.T) {
	h := New(nil)
	l := newFake("l")
	_ = h.Register(l)

	want := []string{"New entry: 2024-05-01 - 120ml", "Updated entry 1: 130ml", "Deleted entry 1"}
	for _, msg := range want {
		h.Broadcast(context.Background(), msg)
	}
	eventually(t, "all deliveries", func() bool { return len(l.received()) == len(want) })
	for i, got := range l.received() {
		if got != want[i] {
			t.Fatalf("message %d = %q; want %q", i, got, want[i])
		}
	}
	h.Close()
}

func TestListenerFallingBehindIsDropped(t *testing.T) {
	m := metrics.New()
	h := New(m)
	stuck := &fakeListener{id: "stuck", blockCh: make(chan struct{})}
	_ = h.Register(stuck)

	for i := 0; i < queueSize+5; i++ {
		h.Broadcast(context.Background(), fmt.Sprintf("Deleted entry %d", i))
	}
	if h.Len() != 0 {
		t.Fatalf("expected stuck listener to be dropped, %d live", h.Len())
	}
	if n := stuck.closeCount(); n != 1 {
		t.Errorf("expected stuck listener closed once, got %d", n)
	}
	close(stuck.blockCh)
	h.Close()
}

func TestUnregisterIsIdempotent(t *testing.T) {
	h := New(nil)
	l := newFake("l")
	_ = h.Register(l)
	h.Unregister(l)
	h.Unregister(l)
	h.Unregister(newFake("never-registered"))
	if h.Len() != 0 {
		t.Fatalf("expected empty hub, got %d", h.Len())
	}
}

func TestCloseRejectsNewListeners(t *testing.T) {
	h := New(nil)
	a, b := newFake("a"), newFake("b")
	_ = h.Register(a)
	_ = h.Register(b)
	h.Close()

	if h.Len() != 0 || a.closeCount() != 1 || b.closeCount() != 1 {
		t.Fatalf("expected all listeners closed, len=%d a=%d b=%d", h.Len(), a.closeCount(), b.closeCount())
	}
	if err := h.Register(newFake("c")); !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v; want ErrClosed", err)
	}
}
