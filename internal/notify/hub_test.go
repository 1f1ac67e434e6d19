package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

var errClosed = errors.New("connection closed")

type fakeConn struct {
	incoming chan []byte
	outgoing chan []byte

	once   sync.Once
	closed chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan []byte, 8),
		outgoing: make(chan []byte, 8),
		closed:   make(chan struct{}),
	}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case data := <-f.incoming:
		return websocket.TextMessage, data, nil
	case <-f.closed:
		return 0, nil, errClosed
	}
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if messageType != websocket.TextMessage {
		return nil
	}
	select {
	case <-f.closed:
		return errClosed
	case f.outgoing <- data:
		return nil
	}
}

func (f *fakeConn) SetReadDeadline(time.Time) error { return nil }
func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }
func (f *fakeConn) SetReadLimit(int64) {}
func (f *fakeConn) SetPongHandler(func(appData string) error) {}

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) next(t *testing.T) lifecycle.Event {
	t.Helper()
	select {
	case data := <-f.outgoing:
		var ev lifecycle.Event
		require.NoError(t, json.Unmarshal(data, &ev))
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event written")
		return lifecycle.Event{}
	}
}

var at = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func statusEvent(status lifecycle.Status, ts time.Time, userIDs ...string) lifecycle.Event {
	return lifecycle.Event{
		Type:       lifecycle.EventRequestStatusChanged,
		RequestID:  "req-1",
		NewStatus:  string(status),
		Timestamp:  ts,
		Recipients: lifecycle.Recipients{UserIDs: userIDs},
	}
}

func TestHub_Serve(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ngoConn := newFakeConn()
	donorConn := newFakeConn()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); hub.Serve(ctx, ngoConn, "ngo-1", lifecycle.RoleNGO) }()
	go func() { defer wg.Done(); hub.Serve(ctx, donorConn, "donor-9", lifecycle.RoleDonor) }()
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish(statusEvent(lifecycle.StatusPickedUp, at, "ngo-1"))
	ev := ngoConn.next(t)
	assert.Equal(t, "picked_up", ev.NewStatus)

	hub.Publish(lifecycle.Event{
		Type:       lifecycle.EventNewRequest,
		RequestID:  "req-2",
		NewStatus:  string(lifecycle.StatusPending),
		Timestamp:  at,
		Recipients: lifecycle.Recipients{Roles: []lifecycle.Role{lifecycle.RoleDonor}},
	})
	ev = donorConn.next(t)
	assert.Equal(t, "req-2", ev.RequestID)

	select {
	case data := <-ngoConn.outgoing:
		t.Fatalf("ngo got an event addressed to donors: %s", data)
	default:
	}

	cancel()
	wg.Wait()
	assert.Zero(t, hub.ClientCount())
}

func TestHub_ServeEndsWhenPeerLeaves(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn := newFakeConn()

	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Serve(context.Background(), conn, "vol-1", lifecycle.RoleVolunteer)
	}()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}
	assert.Zero(t, hub.ClientCount())
}

func TestClient_Offer(t *testing.T) {
	t.Run("suppresses stale and repeated states", func(t *testing.T) {
		c := newClient(newFakeConn(), "ngo-1", lifecycle.RoleNGO, zap.NewNop())

		assert.True(t, c.offer(statusEvent(lifecycle.StatusInTransit, at)))
		assert.False(t, c.offer(statusEvent(lifecycle.StatusInTransit, at)), "same event twice")
		assert.False(t, c.offer(statusEvent(lifecycle.StatusPickedUp, at.Add(time.Minute))), "older status")
		assert.True(t, c.offer(statusEvent(lifecycle.StatusInTransit, at.Add(time.Minute))), "same status, later change")
		assert.True(t, c.offer(statusEvent(lifecycle.StatusDelivered, at.Add(2*time.Minute))))
		assert.Len(t, c.send, 3)
	})

	t.Run("honours subscriptions", func(t *testing.T) {
		c := newClient(newFakeConn(), "donor-1", lifecycle.RoleDonor, zap.NewNop())
		c.apply(controlMessage{Action: "unsubscribe", Events: []lifecycle.EventType{lifecycle.EventNewRequest}})

		feed := lifecycle.Event{Type: lifecycle.EventNewRequest, RequestID: "req-3", NewStatus: "pending", Timestamp: at}
		assert.False(t, c.offer(feed))
		assert.True(t, c.offer(statusEvent(lifecycle.StatusAcceptedByDonor, at)))

		c.apply(controlMessage{Action: "subscribe", Events: []lifecycle.EventType{lifecycle.EventNewRequest}})
		assert.True(t, c.offer(feed))

		c.apply(controlMessage{Action: "mute", Events: []lifecycle.EventType{lifecycle.EventRequestStatusChanged}})
		assert.True(t, c.subscriptions[lifecycle.EventRequestStatusChanged])
	})

	t.Run("drops when the buffer is full", func(t *testing.T) {
		c := newClient(newFakeConn(), "ngo-1", lifecycle.RoleNGO, zap.NewNop())
		for i := 0; i < sendBuffer; i++ {
			ev := statusEvent(lifecycle.StatusPending, at.Add(time.Duration(i)*time.Second))
			ev.RequestID = string(rune('a' + i))
			require.True(t, c.offer(ev))
		}
		assert.False(t, c.offer(statusEvent(lifecycle.StatusCompleted, at)))
	})

	t.Run("verification events are keyed by user", func(t *testing.T) {
		c := newClient(newFakeConn(), "vol-1", lifecycle.RoleVolunteer, zap.NewNop())
		ev := lifecycle.Event{Type: lifecycle.EventVerificationUpdated, UserID: "vol-1", NewStatus: "verified", Timestamp: at}
		assert.True(t, c.offer(ev))
		assert.False(t, c.offer(ev))
	})
}

func TestClient_ReadPumpAppliesControlMessages(t *testing.T) {
	conn := newFakeConn()
	c := newClient(conn, "donor-1", lifecycle.RoleDonor, zap.NewNop())

	conn.incoming <- []byte(`{"action":"unsubscribe","events":["new_request"]}`)
	conn.incoming <- []byte(`garbage`)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.readPump()
	}()

	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return !c.subscriptions[lifecycle.EventNewRequest]
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, conn.Close())
	<-done

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.True(t, c.subscriptions[lifecycle.EventRequestStatusChanged])
}
