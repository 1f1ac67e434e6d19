package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
)

// Hub tracks the websocket sessions of this process and fans relayed events out to
// the ones the event is addressed to. A user may hold several sessions.
type Hub struct {
	clients map[*client]struct{}
	mu      sync.RWMutex
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger.Named("notify"),
	}
}

// Publish never blocks on a session.
func (h *Hub) Publish(ev lifecycle.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if ev.Recipients.Includes(c.userID, c.role) {
			c.offer(ev)
		}
	}
}

// Serve runs a session until the peer goes away or ctx is cancelled, then closes conn.
func (h *Hub) Serve(ctx context.Context, conn Conn, userID string, role lifecycle.Role) {
	c := newClient(conn, userID, role, h.logger)
	h.register(c)
	defer h.unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writePump(ctx)
		// A failed write or shutdown must unblock the reader.
		_ = conn.Close()
	}()

	c.readPump()
	cancel()
	<-done
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	metrics.WebsocketClients.Inc()
	h.logger.Debug("websocket client registered", zap.String("user_id", c.userID), zap.String("role", c.role.String()))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		metrics.WebsocketClients.Dec()
		h.logger.Debug("websocket client unregistered", zap.String("user_id", c.userID))
	}
}
