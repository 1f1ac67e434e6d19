package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// Conn is the part of *websocket.Conn a session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetReadLimit(limit int64)
	SetPongHandler(h func(appData string) error)
	Close() error
}

type controlMessage struct {
	Action string                `json:"action"`
	Events []lifecycle.EventType `json:"events"`
}

// delivered is the newest state a session has seen for one subject.
type delivered struct {
	rank int
	at   time.Time
}

// client is one websocket session. It outlives no connection: subscriptions and the
// duplicate filter start fresh on every connect.
type client struct {
	conn   Conn
	userID string
	role   lifecycle.Role
	send   chan lifecycle.Event
	logger *zap.Logger

	mu            sync.Mutex
	subscriptions map[lifecycle.EventType]bool
	seen          map[string]delivered
}

func newClient(conn Conn, userID string, role lifecycle.Role, logger *zap.Logger) *client {
	subs := make(map[lifecycle.EventType]bool)
	for _, t := range lifecycle.EventTypes() {
		subs[t] = true
	}
	return &client{
		conn:          conn,
		userID:        userID,
		role:          role,
		send:          make(chan lifecycle.Event, sendBuffer),
		logger:        logger,
		subscriptions: subs,
		seen:          make(map[string]delivered),
	}
}

// offer queues ev unless the session unsubscribed from its type, already has the same
// or a newer state of its subject, or is too slow to keep up.
func (c *client) offer(ev lifecycle.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.subscriptions[ev.Type] {
		metrics.NotificationsDroppedTotal.WithLabelValues("unsubscribed").Inc()
		return false
	}
	key := subjectKey(ev)
	next := delivered{rank: ev.Rank(), at: ev.Timestamp}
	if prev, ok := c.seen[key]; ok && !newer(next, prev) {
		metrics.NotificationsDroppedTotal.WithLabelValues("duplicate").Inc()
		return false
	}

	select {
	case c.send <- ev:
		c.seen[key] = next
		return true
	default:
		metrics.NotificationsDroppedTotal.WithLabelValues("slow_client").Inc()
		c.logger.Warn("websocket send buffer full, dropping event",
			zap.String("user_id", c.userID), zap.String("subject", ev.Subject()))
		return false
	}
}

func (c *client) apply(msg controlMessage) {
	var on bool
	switch msg.Action {
	case "subscribe":
		on = true
	case "unsubscribe":
	default:
		c.logger.Debug("ignoring unknown websocket action", zap.String("action", msg.Action))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range msg.Events {
		c.subscriptions[t] = on
	}
}

func (c *client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket closed unexpectedly", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}
		var msg controlMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("ignoring malformed websocket message", zap.String("user_id", c.userID), zap.Error(err))
			continue
		}
		c.apply(msg)
	}
}

func (c *client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-c.send:
			payload, err := json.Marshal(ev)
			if err != nil {
				c.logger.Error("failed to encode event", zap.Error(err))
				continue
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				metrics.NotificationsDroppedTotal.WithLabelValues("write_error").Inc()
				return
			}
			metrics.NotificationsDeliveredTotal.WithLabelValues(string(ev.Type)).Inc()
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func subjectKey(ev lifecycle.Event) string {
	if ev.RequestID != "" {
		return "request:" + ev.RequestID
	}
	return "user:" + ev.UserID
}

func newer(next, prev delivered) bool {
	if next.rank != prev.rank {
		return next.rank > prev.rank
	}
	return next.at.After(prev.at)
}
