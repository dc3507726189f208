package websocket

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"veriface-backend/internal/middleware"
	"veriface-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// sendBuffer bounds the per-connection queue. A connection that falls this
// far behind starts losing pushes; the poll endpoint is the backstop.
const sendBuffer = 32

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub groups observer connections by session and bridges each session's
// Redis pub/sub channel to them. Membership is ephemeral: it lives exactly
// as long as the connections do. Delivery is best-effort — a slow or dead
// observer drops messages, it never delays the publisher or its peers.
type Hub struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]map[*client]struct{}
	redisClient *redis.Client
	jwt         *middleware.JWTAuth
	cancelFuncs map[uuid.UUID]context.CancelFunc
}

func NewHub(redisClient *redis.Client, jwt *middleware.JWTAuth) *Hub {
	return &Hub{
		sessions:    make(map[uuid.UUID]map[*client]struct{}),
		redisClient: redisClient,
		jwt:         jwt,
		cancelFuncs: make(map[uuid.UUID]context.CancelFunc),
	}
}

// HandleWebSocket upgrades an instructor connection and subscribes it to one
// session's attendance events. No backfill: events published before the
// subscription are only visible through the poll endpoint.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Authenticate via token query param
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := h.jwt.ParseToken(tokenStr); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(r.URL.Query().Get("session_id"))
	if err != nil {
		http.Error(w, "Invalid session_id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(sessionID, c)

	go c.writePump()

	// Read loop exists only to observe disconnects
	go func() {
		defer func() {
			conn.Close()
			h.unregister(sessionID, c)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) register(sessionID uuid.UUID, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.sessions[sessionID]
	if !ok {
		clients = make(map[*client]struct{})
		h.sessions[sessionID] = clients
	}
	clients[c] = struct{}{}

	// First observer of this session starts the pub/sub bridge
	if len(clients) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancelFuncs[sessionID] = cancel
		go h.subscribeToPubSub(ctx, sessionID)
	}

	log.Printf("WebSocket connected: session %s (observers: %d)", sessionID, len(clients))
}

func (h *Hub) unregister(sessionID uuid.UUID, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	if _, member := clients[c]; !member {
		return
	}
	delete(clients, c)
	close(c.send)

	// Last observer gone: stop the pub/sub bridge
	if len(clients) == 0 {
		delete(h.sessions, sessionID)
		if cancel, ok := h.cancelFuncs[sessionID]; ok {
			cancel()
			delete(h.cancelFuncs, sessionID)
		}
	}

	log.Printf("WebSocket disconnected: session %s", sessionID)
}

func (h *Hub) subscribeToPubSub(ctx context.Context, sessionID uuid.UUID) {
	pubsub := h.redisClient.Subscribe(ctx, services.SessionChannel(sessionID))
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(sessionID, []byte(msg.Payload))
		}
	}
}

// broadcast enqueues without blocking: a full send buffer drops the message
// for that observer only.
func (h *Hub) broadcast(sessionID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.sessions[sessionID] {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ObserverCount reports how many connections are watching a session.
func (h *Hub) ObserverCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	c.conn.Close()
}
