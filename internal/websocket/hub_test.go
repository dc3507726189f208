package websocket

import (
	"testing"

	"github.com/google/uuid"

	"veriface-backend/internal/middleware"
)

func newTestHub() *Hub {
	return NewHub(nil, middleware.NewJWTAuth("test-secret"))
}

// addClient inserts a client without starting the pub/sub bridge, so tests
// run without Redis.
func addClient(h *Hub, sessionID uuid.UUID) *client {
	c := &client{send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	clients, ok := h.sessions[sessionID]
	if !ok {
		clients = make(map[*client]struct{})
		h.sessions[sessionID] = clients
	}
	clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func TestBroadcast_ReachesAllSessionObservers(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()
	otherSession := uuid.New()

	a := addClient(h, sessionID)
	b := addClient(h, sessionID)
	outsider := addClient(h, otherSession)

	h.broadcast(sessionID, []byte("event"))

	for _, c := range []*client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != "event" {
				t.Errorf("got %q, want %q", msg, "event")
			}
		default:
			t.Error("observer did not receive broadcast")
		}
	}

	select {
	case <-outsider.send:
		t.Error("observer of another session received the broadcast")
	default:
	}
}

func TestBroadcast_DropsWhenObserverIsSlow(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()
	slow := addClient(h, sessionID)

	// Fill the buffer, then one more; the overflow must be dropped without
	// blocking the broadcaster.
	for i := 0; i <= sendBuffer; i++ {
		h.broadcast(sessionID, []byte("event"))
	}

	if got := len(slow.send); got != sendBuffer {
		t.Errorf("buffered %d messages, want %d", got, sendBuffer)
	}
}

func TestUnregister_RemovesObserverAndSession(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()

	a := addClient(h, sessionID)
	b := addClient(h, sessionID)

	h.unregister(sessionID, a)
	if got := h.ObserverCount(sessionID); got != 1 {
		t.Fatalf("ObserverCount = %d, want 1", got)
	}

	h.unregister(sessionID, b)
	if got := h.ObserverCount(sessionID); got != 0 {
		t.Fatalf("ObserverCount = %d, want 0", got)
	}

	h.mu.RLock()
	_, exists := h.sessions[sessionID]
	h.mu.RUnlock()
	if exists {
		t.Error("empty session channel was not removed")
	}
}

func TestUnregister_Idempotent(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()
	c := addClient(h, sessionID)

	h.unregister(sessionID, c)
	h.unregister(sessionID, c) // second call must not panic or double-close
}

func TestBroadcast_AfterUnregisterDoesNotDeliver(t *testing.T) {
	h := newTestHub()
	sessionID := uuid.New()

	gone := addClient(h, sessionID)
	stays := addClient(h, sessionID)
	h.unregister(sessionID, gone)

	h.broadcast(sessionID, []byte("late"))

	select {
	case msg := <-stays.send:
		if string(msg) != "late" {
			t.Errorf("got %q, want %q", msg, "late")
		}
	default:
		t.Error("remaining observer did not receive broadcast")
	}
}
